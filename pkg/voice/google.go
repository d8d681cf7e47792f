package voice

import (
	"context"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/ssml-tts/pkg/misc"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GoogleClient Google Text-to-Speech 客户端中用到的方法，*texttospeech.Client 实现了该接口
type GoogleClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
	Close() error
}

type GoogleEngine struct {
	client GoogleClient
}

// NewGoogleEngine credentialsFile 为空时使用 Application Default Credentials
func NewGoogleEngine(ctx context.Context, credentialsFile string) (*GoogleEngine, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create google text-to-speech client")
	}

	return NewGoogleEngineWithClient(client), nil
}

func NewGoogleEngineWithClient(client GoogleClient) *GoogleEngine {
	return &GoogleEngine{client: client}
}

func (eng *GoogleEngine) Close() error {
	return eng.client.Close()
}

// Synthesize 语言代码从音色名称中提取，例如 ja-JP-Chirp3-HD-Zephyr -> ja-JP
func (eng *GoogleEngine) Synthesize(ctx context.Context, ssml string, voiceID string) ([]byte, error) {
	languageCode := misc.LanguageCode(voiceID)
	log.F(log.M{"voice": voiceID, "language": languageCode}).Debug("request google text-to-speech synthesis")

	resp, err := eng.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{Ssml: ssml},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voiceID,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "google synthesize speech failed")
	}

	if len(resp.GetAudioContent()) == 0 {
		return nil, ErrNoAudio
	}

	return resp.GetAudioContent(), nil
}

func (eng *GoogleEngine) ListVoices(ctx context.Context, languageCode string) ([]Info, error) {
	resp, err := eng.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{LanguageCode: languageCode})
	if err != nil {
		return nil, errors.Wrap(err, "google list voices failed")
	}

	infos := make([]Info, 0, len(resp.GetVoices()))
	for _, v := range resp.GetVoices() {
		infos = append(infos, Info{
			Name:          v.GetName(),
			LanguageCodes: v.GetLanguageCodes(),
			Gender:        v.GetSsmlGender().String(),
		})
	}

	return sortInfos(infos), nil
}
