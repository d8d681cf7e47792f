package command

import (
	"context"

	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/ssml-tts/config"
	"github.com/mylxsw/ssml-tts/pkg/voice"
)

// Amazon Amazon Polly，音色限定为 voice.PollyVoices
func Amazon() Provider {
	return Provider{
		Name:         "amazon-tts",
		Usage:        "读取 SSML 文件，使用 Amazon Polly 生成音频文件",
		ServiceName:  "Amazon Polly",
		VoiceFlag:    "model",
		VoiceAlias:   "m",
		VoiceUsage:   "使用的音色（Amazon Polly VoiceId）",
		DefaultVoice: voice.PollyVoiceMizuki.String(),
		Voices:       array.Map(voice.PollyVoices(), func(item voice.PollyVoice, _ int) string { return item.String() }),
		ParseVoice: func(name string) (string, error) {
			v, err := voice.ParsePollyVoice(name)
			return v.String(), err
		},
		NewSynthesizer: engineOf(voice.VendorAmazon),
	}
}

// Azure Azure Speech Service，SSML 中需要包含 {voice_name} 占位符
func Azure() Provider {
	return Provider{
		Name:         "azure-tts",
		Usage:        "读取 SSML 文件，使用 Azure Speech Service 生成音频文件",
		ServiceName:  "Azure Speech Service",
		VoiceFlag:    "voice",
		VoiceAlias:   "v",
		VoiceUsage:   "使用的音色（Azure Neural Voice），会替换 SSML 中的 {voice_name} 占位符",
		DefaultVoice: voice.AzureVoiceNanami.String(),
		Voices:       array.Map(voice.AzureVoices(), func(item voice.AzureVoice, _ int) string { return item.String() }),
		ParseVoice: func(name string) (string, error) {
			v, err := voice.ParseAzureVoice(name)
			return v.String(), err
		},
		NewSynthesizer: engineOf(voice.VendorAzure),
	}
}

// Google Google Cloud Text-to-Speech，音色名称不做限制
func Google() Provider {
	return Provider{
		Name:           "google-tts",
		Usage:          "读取 SSML 文件，使用 Google Cloud Text-to-Speech 生成音频文件",
		ServiceName:    "Google Cloud Text-to-Speech",
		VoiceFlag:      "model",
		VoiceAlias:     "m",
		VoiceUsage:     "使用的音色名称，例如 ja-JP-Chirp3-HD-Sulafat",
		DefaultVoice:   voice.DefaultGoogleVoice,
		ParseVoice:     voice.ParseGoogleVoice,
		NewSynthesizer: engineOf(voice.VendorGoogle),
	}
}

func engineOf(vendor voice.Vendor) func(ctx context.Context, conf *config.Config) (voice.Synthesizer, error) {
	return func(ctx context.Context, conf *config.Config) (voice.Synthesizer, error) {
		return voice.NewEngine(ctx, conf, vendor)
	}
}
