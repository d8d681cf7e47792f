package command

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// reorderArgs 将选项移动到位置参数之前，支持 `amazon-tts input.ssml --output out.mp3` 这种写法
//
// 第一个位置参数是子命令时不做调整，交给子命令自己解析
func reorderArgs(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}

	withValue := make(map[string]bool)
	for _, f := range app.Flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}

		for _, name := range f.Names() {
			withValue[name] = true
		}
	}

	flags := make([]string, 0, len(args))
	positional := make([]string, 0, 1)

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}

		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)

			name := strings.TrimLeft(arg, "-")
			if !strings.Contains(name, "=") && withValue[name] && i+1 < len(rest) {
				flags = append(flags, rest[i+1])
				i++
			}

			continue
		}

		if len(positional) == 0 && app.Command(arg) != nil {
			return args
		}

		positional = append(positional, arg)
	}

	reordered := append([]string{args[0]}, flags...)
	if len(positional) > 0 {
		reordered = append(reordered, "--")
	}

	return append(reordered, positional...)
}
