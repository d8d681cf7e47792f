package voice

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/mylxsw/asteria/log"
	"github.com/pkg/errors"
)

type PollyEngine struct {
	client pollyiface.PollyAPI
}

// NewPollyEngine accessKeyID 和 secretAccessKey 都为空时，使用 AWS SDK 默认的认证链（共享配置文件、实例角色等）
func NewPollyEngine(accessKeyID string, secretAccessKey string, region string) (*PollyEngine, error) {
	awsConf := aws.NewConfig().WithRegion(region)
	if accessKeyID != "" || secretAccessKey != "" {
		if accessKeyID == "" || secretAccessKey == "" {
			return nil, missingCredentials(VendorAmazon, "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY")
		}

		awsConf = awsConf.WithCredentials(credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""))
	}

	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}

	return NewPollyEngineWithClient(polly.New(sess)), nil
}

func NewPollyEngineWithClient(client pollyiface.PollyAPI) *PollyEngine {
	return &PollyEngine{client: client}
}

func (eng *PollyEngine) Synthesize(ctx context.Context, ssml string, voiceID string) ([]byte, error) {
	engine := PollyVoice(voiceID).Engine()
	log.F(log.M{"voice": voiceID, "engine": engine}).Debug("request amazon polly synthesis")

	output, err := eng.client.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		Engine:       aws.String(engine),
		OutputFormat: aws.String(polly.OutputFormatMp3),
		Text:         aws.String(ssml),
		TextType:     aws.String(polly.TextTypeSsml),
		VoiceId:      aws.String(voiceID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "amazon polly synthesize speech failed")
	}

	if output.AudioStream == nil {
		return nil, ErrNoAudio
	}
	defer output.AudioStream.Close()

	data, err := io.ReadAll(output.AudioStream)
	if err != nil {
		return nil, errors.Wrap(err, "read polly audio stream")
	}

	if len(data) == 0 {
		return nil, ErrNoAudio
	}

	return data, nil
}

func (eng *PollyEngine) ListVoices(ctx context.Context, languageCode string) ([]Info, error) {
	input := &polly.DescribeVoicesInput{}
	if languageCode != "" {
		input.LanguageCode = aws.String(languageCode)
	}

	infos := make([]Info, 0)
	for {
		output, err := eng.client.DescribeVoicesWithContext(ctx, input)
		if err != nil {
			return nil, errors.Wrap(err, "amazon polly describe voices failed")
		}

		for _, v := range output.Voices {
			infos = append(infos, Info{
				Name:          aws.StringValue(v.Id),
				LanguageCodes: append([]string{aws.StringValue(v.LanguageCode)}, aws.StringValueSlice(v.AdditionalLanguageCodes)...),
				Gender:        aws.StringValue(v.Gender),
				Engines:       aws.StringValueSlice(v.SupportedEngines),
			})
		}

		if aws.StringValue(output.NextToken) == "" {
			break
		}

		input.NextToken = output.NextToken
	}

	return sortInfos(infos), nil
}
