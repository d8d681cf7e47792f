package misc

import (
	"strings"

	"gopkg.in/resty.v1"
)

// UserAgent 请求服务商 REST 接口时使用的 User-Agent
const UserAgent = "ssml-tts"

// RestyClient 创建一个 HTTP 客户端，请求失败时不会自动重试
func RestyClient() *resty.Client {
	return resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent)
}

// MaskStr 隐藏字符串中间部分
func MaskStr(content string, left int) string {
	size := len(content)
	if size < 16 {
		return strings.Repeat("*", size)
	}

	return content[:left] + strings.Repeat("*", size-left*2) + content[size-left:]
}

// LanguageCode 从音色名称中提取语言代码，例如 ja-JP-Chirp3-HD-Zephyr -> ja-JP
func LanguageCode(voiceName string) string {
	segments := strings.SplitN(voiceName, "-", 3)
	if len(segments) > 2 {
		segments = segments[:2]
	}

	return strings.Join(segments, "-")
}
