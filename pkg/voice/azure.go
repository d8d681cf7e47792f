package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/ssml-tts/pkg/misc"
	"github.com/pkg/errors"
	"gopkg.in/resty.v1"
)

// AzureOutputFormat 16kHz 32kbps 单声道 MP3
const AzureOutputFormat = "audio-16khz-32kbitrate-mono-mp3"

type AzureEngine struct {
	subscriptionKey string
	region          string
	endpoint        string
	client          *resty.Client
}

type AzureOption func(eng *AzureEngine)

// WithAzureEndpoint 替换默认的 https://{region}.tts.speech.microsoft.com 地址
func WithAzureEndpoint(endpoint string) AzureOption {
	return func(eng *AzureEngine) {
		eng.endpoint = strings.TrimRight(endpoint, "/")
	}
}

func NewAzureEngine(subscriptionKey string, region string, opts ...AzureOption) (*AzureEngine, error) {
	if subscriptionKey == "" || region == "" {
		return nil, missingCredentials(VendorAzure, "AZURE_SPEECH_KEY", "AZURE_SPEECH_REGION")
	}

	eng := &AzureEngine{
		subscriptionKey: subscriptionKey,
		region:          region,
		endpoint:        fmt.Sprintf("https://%s.tts.speech.microsoft.com", region),
		client:          misc.RestyClient(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	return eng, nil
}

// Synthesize SSML 中的 {voice_name} 占位符会被替换为 voiceID，音色由 SSML 中的 voice 元素决定
func (s *AzureEngine) Synthesize(ctx context.Context, ssml string, voiceID string) ([]byte, error) {
	content, substituted, err := FormatVoicePlaceholder(ssml, voiceID)
	if err != nil {
		return nil, err
	}

	if !substituted {
		log.F(log.M{"voice": voiceID}).Warningf("ssml does not contain %s placeholder, the voice defined in ssml will be used", VoicePlaceholder)
	}

	log.F(log.M{"region": s.region, "key": misc.MaskStr(s.subscriptionKey, 4), "voice": voiceID}).Debug("request azure speech synthesis")

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", s.subscriptionKey).
		SetHeader("Content-Type", "application/ssml+xml").
		SetHeader("X-Microsoft-OutputFormat", AzureOutputFormat).
		SetBody(content).
		Post(s.endpoint + "/cognitiveservices/v1")
	if err != nil {
		return nil, errors.Wrap(err, "azure speech request failed")
	}

	if !resp.IsSuccess() {
		details := strings.TrimSpace(string(resp.Body()))
		if details == "" {
			details = resp.Status()
		}

		return nil, &CanceledError{
			Reason:       "Error",
			ErrorCode:    strconv.Itoa(resp.StatusCode()),
			ErrorDetails: details,
		}
	}

	if len(resp.Body()) == 0 {
		return nil, ErrNoAudio
	}

	return resp.Body(), nil
}

type azureVoice struct {
	ShortName       string   `json:"ShortName"`
	Gender          string   `json:"Gender"`
	Locale          string   `json:"Locale"`
	SecondaryLocale []string `json:"SecondaryLocaleList"`
}

// ListVoices languageCode 为空时返回所有音色
func (s *AzureEngine) ListVoices(ctx context.Context, languageCode string) ([]Info, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", s.subscriptionKey).
		Get(s.endpoint + "/cognitiveservices/voices/list")
	if err != nil {
		return nil, errors.Wrap(err, "azure voices request failed")
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("list voices failed: [%d] %s", resp.StatusCode(), string(resp.Body()))
	}

	var voices []azureVoice
	if err := json.Unmarshal(resp.Body(), &voices); err != nil {
		return nil, errors.Wrap(err, "decode azure voices")
	}

	infos := make([]Info, 0, len(voices))
	for _, v := range voices {
		if languageCode != "" && !strings.EqualFold(v.Locale, languageCode) {
			continue
		}

		infos = append(infos, Info{
			Name:          v.ShortName,
			LanguageCodes: append([]string{v.Locale}, v.SecondaryLocale...),
			Gender:        v.Gender,
		})
	}

	return sortInfos(infos), nil
}
