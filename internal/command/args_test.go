package command

import (
	"testing"

	"github.com/mylxsw/go-utils/assert"
)

func TestReorderArgs(t *testing.T) {
	app := NewApp(Amazon())

	cases := []struct {
		args   []string
		expect []string
	}{
		{
			args:   []string{"amazon-tts", "data/ssmls/input.ssml"},
			expect: []string{"amazon-tts", "--", "data/ssmls/input.ssml"},
		},
		{
			args:   []string{"amazon-tts", "data/ssmls/input.ssml", "--output", "out.mp3", "-m", "Takumi"},
			expect: []string{"amazon-tts", "--output", "out.mp3", "-m", "Takumi", "--", "data/ssmls/input.ssml"},
		},
		{
			args:   []string{"amazon-tts", "--debug", "input.ssml", "-o=out.mp3"},
			expect: []string{"amazon-tts", "--debug", "-o=out.mp3", "--", "input.ssml"},
		},
		{
			args:   []string{"amazon-tts", "-o", "out.mp3"},
			expect: []string{"amazon-tts", "-o", "out.mp3"},
		},
		{
			args:   []string{"amazon-tts", "--", "-strange.ssml"},
			expect: []string{"amazon-tts", "--", "-strange.ssml"},
		},
		{
			args:   []string{"amazon-tts", "--env-file", "prod.env", "voices", "--language", "en-US"},
			expect: []string{"amazon-tts", "--env-file", "prod.env", "voices", "--language", "en-US"},
		},
		{
			args:   []string{"amazon-tts"},
			expect: []string{"amazon-tts"},
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, reorderArgs(app, c.args))
	}
}
