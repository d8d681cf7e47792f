package voice

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoAudio 服务商的响应中没有音频数据
	ErrNoAudio = errors.New("audio data could not be obtained")
	// ErrMissingCredentials 服务商认证信息未配置
	ErrMissingCredentials = errors.New("credentials are not configured")
	// ErrUnknownVoice 音色不在可选范围内
	ErrUnknownVoice = errors.New("unknown voice")
)

// CanceledError 语音合成被服务商取消，Reason 为取消原因，出错时 ErrorDetails 包含服务商返回的错误详情
type CanceledError struct {
	Reason       string
	ErrorCode    string
	ErrorDetails string
}

func (e *CanceledError) Error() string {
	if e.ErrorDetails == "" && e.ErrorCode == "" {
		return fmt.Sprintf("speech synthesis canceled: %s", e.Reason)
	}

	return fmt.Sprintf("speech synthesis canceled: %s, error details: [%s] %s", e.Reason, e.ErrorCode, e.ErrorDetails)
}

func missingCredentials(vendor Vendor, keys ...string) error {
	return errors.Wrapf(ErrMissingCredentials, "%s: set %s in .env", vendor, strings.Join(keys, " and "))
}
