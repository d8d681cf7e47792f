package misc_test

import (
	"testing"

	"github.com/mylxsw/go-utils/assert"
	"github.com/mylxsw/ssml-tts/pkg/misc"
)

func TestMaskStr(t *testing.T) {
	assert.Equal(t, "*****", misc.MaskStr("short", 4))
	assert.Equal(t, "abcd********mnop", misc.MaskStr("abcdefghijklmnop", 4))
}

func TestLanguageCode(t *testing.T) {
	assert.Equal(t, "ja-JP", misc.LanguageCode("ja-JP-Chirp3-HD-Zephyr"))
	assert.Equal(t, "en-US", misc.LanguageCode("en-US-Standard-C"))
	assert.Equal(t, "cmn-CN", misc.LanguageCode("cmn-CN-Wavenet-A"))
	assert.Equal(t, "ja-JP", misc.LanguageCode("ja-JP"))
	assert.Equal(t, "Mizuki", misc.LanguageCode("Mizuki"))
	assert.Equal(t, "", misc.LanguageCode(""))
}

func TestRestyClient(t *testing.T) {
	client := misc.RestyClient()
	assert.Equal(t, 0, client.RetryCount)
	assert.Equal(t, misc.UserAgent, client.Header.Get("User-Agent"))
}
