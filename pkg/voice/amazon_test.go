package voice_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/mylxsw/go-utils/assert"
	"github.com/mylxsw/ssml-tts/pkg/voice"
	"github.com/stretchr/testify/require"
)

type pollyStub struct {
	pollyiface.PollyAPI

	input  *polly.SynthesizeSpeechInput
	output *polly.SynthesizeSpeechOutput
	err    error

	pages []*polly.DescribeVoicesOutput
	calls int
}

func (s *pollyStub) SynthesizeSpeechWithContext(_ aws.Context, input *polly.SynthesizeSpeechInput, _ ...request.Option) (*polly.SynthesizeSpeechOutput, error) {
	s.input = input
	return s.output, s.err
}

func (s *pollyStub) DescribeVoicesWithContext(_ aws.Context, _ *polly.DescribeVoicesInput, _ ...request.Option) (*polly.DescribeVoicesOutput, error) {
	page := s.pages[s.calls]
	s.calls++
	return page, nil
}

func TestPollyEngine_Synthesize(t *testing.T) {
	stub := &pollyStub{output: &polly.SynthesizeSpeechOutput{AudioStream: io.NopCloser(strings.NewReader("ID3-polly-audio"))}}
	eng := voice.NewPollyEngineWithClient(stub)

	data, err := eng.Synthesize(context.TODO(), "<speak>こんにちは</speak>", string(voice.PollyVoiceKazuha))
	require.NoError(t, err)
	assert.Equal(t, "ID3-polly-audio", string(data))

	assert.Equal(t, "<speak>こんにちは</speak>", aws.StringValue(stub.input.Text))
	assert.Equal(t, polly.TextTypeSsml, aws.StringValue(stub.input.TextType))
	assert.Equal(t, polly.OutputFormatMp3, aws.StringValue(stub.input.OutputFormat))
	assert.Equal(t, "Kazuha", aws.StringValue(stub.input.VoiceId))
	assert.Equal(t, polly.EngineNeural, aws.StringValue(stub.input.Engine))
}

func TestPollyEngine_SynthesizeNoAudio(t *testing.T) {
	eng := voice.NewPollyEngineWithClient(&pollyStub{output: &polly.SynthesizeSpeechOutput{}})

	_, err := eng.Synthesize(context.TODO(), "<speak>テスト</speak>", string(voice.PollyVoiceMizuki))
	require.ErrorIs(t, err, voice.ErrNoAudio)
}

func TestPollyEngine_SynthesizeError(t *testing.T) {
	eng := voice.NewPollyEngineWithClient(&pollyStub{err: errors.New("InvalidSsmlException: bad ssml")})

	_, err := eng.Synthesize(context.TODO(), "<speak>", string(voice.PollyVoiceMizuki))
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidSsmlException")
}

func TestNewPollyEngineMissingCredentials(t *testing.T) {
	_, err := voice.NewPollyEngine("AKIA-only-id", "", "us-west-2")
	require.ErrorIs(t, err, voice.ErrMissingCredentials)

	eng, err := voice.NewPollyEngine("AKIA-id", "secret", "us-west-2")
	require.NoError(t, err)
	assert.True(t, eng != nil)
}

func TestPollyEngine_ListVoices(t *testing.T) {
	stub := &pollyStub{pages: []*polly.DescribeVoicesOutput{
		{
			Voices: []*polly.Voice{
				{Id: aws.String("Takumi"), Gender: aws.String("Male"), LanguageCode: aws.String("ja-JP"), SupportedEngines: aws.StringSlice([]string{"standard", "neural"})},
			},
			NextToken: aws.String("page-2"),
		},
		{
			Voices: []*polly.Voice{
				{Id: aws.String("Mizuki"), Gender: aws.String("Female"), LanguageCode: aws.String("ja-JP"), SupportedEngines: aws.StringSlice([]string{"standard"})},
			},
		},
	}}

	infos, err := voice.NewPollyEngineWithClient(stub).ListVoices(context.TODO(), "ja-JP")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
	require.Len(t, infos, 2)
	assert.Equal(t, "Mizuki", infos[0].Name)
	assert.Equal(t, "Takumi", infos[1].Name)
	assert.Equal(t, []string{"standard", "neural"}, infos[1].Engines)
}
