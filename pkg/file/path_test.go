package file_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mylxsw/go-utils/assert"
	"github.com/mylxsw/ssml-tts/pkg/file"
)

func TestResolveOutputPath(t *testing.T) {
	cases := []struct {
		input  string
		model  string
		expect string
	}{
		{"data/ssmls/fish-intro.ssml", "ja-JP-Chirp3-HD-Zephyr", "data/audios/fish-intro_ja-JP-Chirp3-HD-Zephyr.mp3"},
		{"fish-intro.ssml", "Mizuki", "data/audios/fish-intro_Mizuki.mp3"},
		{"/tmp/a/b/story.xml", "ja-JP-NanamiNeural", "data/audios/story_ja-JP-NanamiNeural.mp3"},
		{"data/ssmls/archive.tar.ssml", "Takumi", "data/audios/archive.tar_Takumi.mp3"},
		{"data/ssmls/noext", "Kazuha", "data/audios/noext_Kazuha.mp3"},
		{"data/ssmls/.hidden", "Tomoko", "data/audios/.hidden_Tomoko.mp3"},
		{"data/ssmls/fish-intro.ssml", "ja-JP-Masaru:DragonHDLatestNeural", "data/audios/fish-intro_ja-JP-Masaru:DragonHDLatestNeural.mp3"},
	}

	for _, c := range cases {
		assert.Equal(t, filepath.FromSlash(c.expect), file.ResolveOutputPath(c.input, c.model, ""))
	}
}

func TestResolveOutputPathSanitizesSeparators(t *testing.T) {
	for _, model := range []string{"vendor/voice", `vendor\voice`, `a/\b`, "/", `\\`, "a//b/"} {
		resolved := file.ResolveOutputPath("data/ssmls/fish-intro.ssml", model, "")

		name := filepath.Base(resolved)
		assert.False(t, strings.ContainsAny(name, `/\`))
		assert.Equal(t, file.DefaultOutputDir, filepath.ToSlash(filepath.Dir(resolved)))
		assert.Equal(t, "fish-intro_"+file.SanitizeModelName(model)+".mp3", name)
	}
}

func TestSanitizeModelName(t *testing.T) {
	assert.Equal(t, "ja-JP-Chirp3-HD-Zephyr", file.SanitizeModelName("ja-JP-Chirp3-HD-Zephyr"))
	assert.Equal(t, "vendor-voice", file.SanitizeModelName("vendor/voice"))
	assert.Equal(t, "vendor-voice", file.SanitizeModelName(`vendor\voice`))
	// 连续的分隔符逐个替换，不会合并
	assert.Equal(t, "a--b", file.SanitizeModelName(`a/\b`))
	assert.Equal(t, "---", file.SanitizeModelName(`/\/`))
	assert.Equal(t, "", file.SanitizeModelName(""))
}

func TestResolveOutputPathExplicit(t *testing.T) {
	for _, explicit := range []string{"out.mp3", "data/audios/custom.mp3", "../relative/../x.wav", "/abs/path/with/../dots.mp3"} {
		assert.Equal(t, explicit, file.ResolveOutputPath("data/ssmls/fish-intro.ssml", "any/model", explicit))
		assert.Equal(t, explicit, file.ResolveOutputPath("", "", explicit))
	}
}
