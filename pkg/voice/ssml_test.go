package voice_test

import (
	"testing"

	"github.com/mylxsw/go-utils/assert"
	"github.com/mylxsw/ssml-tts/pkg/voice"
)

func TestFormatVoicePlaceholder(t *testing.T) {
	cases := []struct {
		ssml        string
		expect      string
		substituted bool
	}{
		{`<voice name="{voice_name}">テスト</voice>`, `<voice name="ja-JP-AoiNeural">テスト</voice>`, true},
		{`<speak>no placeholder</speak>`, `<speak>no placeholder</speak>`, false},
		{`{voice_name}|{voice_name}`, `ja-JP-AoiNeural|ja-JP-AoiNeural`, true},
		{`<mstts:express-as style="{{cheerful}}">`, `<mstts:express-as style="{cheerful}">`, false},
		{`<voice name="{{voice_name}}">`, `<voice name="{voice_name}">`, false},
		{`}}{{`, `}{`, false},
		{``, ``, false},
	}

	for _, c := range cases {
		res, substituted, err := voice.FormatVoicePlaceholder(c.ssml, "ja-JP-AoiNeural")
		assert.NoError(t, err)
		assert.Equal(t, c.expect, res)
		assert.Equal(t, c.substituted, substituted)
	}
}

func TestFormatVoicePlaceholderErrors(t *testing.T) {
	for _, ssml := range []string{`{speaker}`, `{}`, `<voice name="{voice_name">`, `a } b`, `{ voice_name }`} {
		_, _, err := voice.FormatVoicePlaceholder(ssml, "ja-JP-AoiNeural")
		assert.True(t, err != nil)
	}
}
