package voice

import (
	"context"
	"fmt"
	"io"

	"github.com/mylxsw/ssml-tts/config"
)

// Vendor 语音合成服务商
type Vendor string

const (
	VendorAmazon Vendor = "amazon"
	VendorAzure  Vendor = "azure"
	VendorGoogle Vendor = "google"
)

// Synthesizer 语音合成接口，将 SSML 转换为 MP3 音频数据
type Synthesizer interface {
	Synthesize(ctx context.Context, ssml string, voiceID string) ([]byte, error)
}

// Lister 查询服务商支持的音色
type Lister interface {
	ListVoices(ctx context.Context, languageCode string) ([]Info, error)
}

// Info 音色信息
type Info struct {
	Name          string   `json:"name"`
	LanguageCodes []string `json:"language_codes"`
	Gender        string   `json:"gender"`
	// Engines 支持的合成引擎，仅 Amazon Polly 返回
	Engines []string `json:"engines,omitempty"`
}

// NewEngine 根据服务商创建语音合成引擎
func NewEngine(ctx context.Context, conf *config.Config, vendor Vendor) (Synthesizer, error) {
	switch vendor {
	case VendorAmazon:
		engine, err := NewPollyEngine(conf.AWSAccessKeyID, conf.AWSSecretAccessKey, conf.AWSRegion)
		if err != nil {
			return nil, err
		}
		return engine, nil
	case VendorAzure:
		engine, err := NewAzureEngine(conf.AzureSpeechKey, conf.AzureSpeechRegion)
		if err != nil {
			return nil, err
		}
		return engine, nil
	case VendorGoogle:
		engine, err := NewGoogleEngine(ctx, conf.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}

	return nil, fmt.Errorf("unsupported vendor: %s", vendor)
}

// Close 释放引擎持有的资源（如 gRPC 连接）
func Close(engine Synthesizer) error {
	if closer, ok := engine.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
