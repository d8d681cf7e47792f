package voice

import (
	"strings"

	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/mylxsw/go-utils/array"
	"github.com/pkg/errors"
)

// PollyVoice Amazon Polly 可用的日语音色
type PollyVoice string

const (
	PollyVoiceMizuki PollyVoice = "Mizuki" // 女声，标准
	PollyVoiceTakumi PollyVoice = "Takumi" // 男声，标准
	PollyVoiceKazuha PollyVoice = "Kazuha" // 女声，Neural
	PollyVoiceTomoko PollyVoice = "Tomoko" // 女声，Neural
)

func (v PollyVoice) String() string {
	return string(v)
}

// Engine 音色对应的 Polly 合成引擎，Kazuha 和 Tomoko 只支持 neural 引擎
func (v PollyVoice) Engine() string {
	switch v {
	case PollyVoiceKazuha, PollyVoiceTomoko:
		return polly.EngineNeural
	default:
		return polly.EngineStandard
	}
}

// PollyVoices 所有可选的 Polly 音色
func PollyVoices() []PollyVoice {
	return []PollyVoice{PollyVoiceMizuki, PollyVoiceTakumi, PollyVoiceKazuha, PollyVoiceTomoko}
}

// ParsePollyVoice 解析 Polly 音色名称，不区分大小写
func ParsePollyVoice(name string) (PollyVoice, error) {
	return parseVoice(name, PollyVoices())
}

// AzureVoice Azure Speech Service 可用的日语音色
type AzureVoice string

const (
	AzureVoiceNanami       AzureVoice = "ja-JP-NanamiNeural" // 女声
	AzureVoiceKeita        AzureVoice = "ja-JP-KeitaNeural"  // 男声
	AzureVoiceAoi          AzureVoice = "ja-JP-AoiNeural"    // 女声
	AzureVoiceDaichi       AzureVoice = "ja-JP-DaichiNeural" // 男声
	AzureVoiceMayu         AzureVoice = "ja-JP-MayuNeural"   // 女声
	AzureVoiceNaoki        AzureVoice = "ja-JP-NaokiNeural"  // 男声
	AzureVoiceShiori       AzureVoice = "ja-JP-ShioriNeural" // 女声
	AzureVoiceMasaru       AzureVoice = "ja-JP-MasaruMultilingualNeural"
	AzureVoiceMasaruDragon AzureVoice = "ja-JP-Masaru:DragonHDLatestNeural"
	AzureVoiceNanamiDragon AzureVoice = "ja-JP-Nanami:DragonHDLatestNeural"
)

func (v AzureVoice) String() string {
	return string(v)
}

// AzureVoices 所有可选的 Azure 音色
func AzureVoices() []AzureVoice {
	return []AzureVoice{
		AzureVoiceNanami,
		AzureVoiceKeita,
		AzureVoiceAoi,
		AzureVoiceDaichi,
		AzureVoiceMayu,
		AzureVoiceNaoki,
		AzureVoiceShiori,
		AzureVoiceMasaru,
		AzureVoiceMasaruDragon,
		AzureVoiceNanamiDragon,
	}
}

// ParseAzureVoice 解析 Azure 音色名称，不区分大小写
func ParseAzureVoice(name string) (AzureVoice, error) {
	return parseVoice(name, AzureVoices())
}

// DefaultGoogleVoice Google Text-to-Speech 默认音色
const DefaultGoogleVoice = "ja-JP-Chirp3-HD-Zephyr"

// ParseGoogleVoice Google 的音色不做枚举限制，只要求非空
func ParseGoogleVoice(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrap(ErrUnknownVoice, "voice name is empty")
	}

	return name, nil
}

func parseVoice[T ~string](name string, candidates []T) (T, error) {
	for _, candidate := range candidates {
		if strings.EqualFold(string(candidate), strings.TrimSpace(name)) {
			return candidate, nil
		}
	}

	choices := array.Map(candidates, func(item T, _ int) string { return string(item) })
	return "", errors.Wrapf(ErrUnknownVoice, "%q is not one of %s", name, strings.Join(choices, ", "))
}
