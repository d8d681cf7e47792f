package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/go-utils/ternary"
	"github.com/mylxsw/ssml-tts/config"
	"github.com/mylxsw/ssml-tts/pkg/file"
	"github.com/mylxsw/ssml-tts/pkg/voice"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Provider 一个语音合成服务商对应的命令行工具
type Provider struct {
	Name        string
	Usage       string
	Version     string
	ServiceName string

	// VoiceFlag 选择音色的命令行选项，例如 model/m、voice/v
	VoiceFlag    string
	VoiceAlias   string
	VoiceUsage   string
	DefaultVoice string
	// Voices 可选的音色，为空时不限制
	Voices []string
	// ParseVoice 校验并规范化音色名称
	ParseVoice func(name string) (string, error)

	NewSynthesizer func(ctx context.Context, conf *config.Config) (voice.Synthesizer, error)
}

// NewApp 创建命令行应用：
//
//	<name> [options] <SSML 文件>
//	<name> [options] voices [--language ja-JP]
func NewApp(p Provider) *cli.App {
	flags := append(config.Flags(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "输出音频文件路径（MP3 格式），不指定时自动生成到 " + file.DefaultOutputDir + " 目录",
		},
		&cli.StringFlag{
			Name:    p.VoiceFlag,
			Aliases: []string{p.VoiceAlias},
			Value:   p.DefaultVoice,
			Usage:   voiceUsage(p),
		},
		// 内置的 version 选项占用了 -v，与 azure-tts 的 --voice 冲突
		&cli.BoolFlag{Name: "version", Usage: "输出版本信息"},
	)

	return &cli.App{
		Name:        p.Name,
		Usage:       p.Usage,
		Version:     p.Version,
		HideVersion: true,
		ArgsUsage:   "<SSML 文件>",
		Flags:       flags,
		Before:      before,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				cli.ShowVersion(c)
				return nil
			}

			return synthesize(c, p)
		},
		Commands: []*cli.Command{
			{
				Name:  "voices",
				Usage: "列出 " + p.ServiceName + " 支持的音色",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: "ja-JP", Usage: "语言代码，为空时列出所有音色"},
				},
				Action: func(c *cli.Context) error {
					return listVoices(c, p)
				},
			},
		},
	}
}

func voiceUsage(p Provider) string {
	if len(p.Voices) == 0 {
		return p.VoiceUsage
	}

	return fmt.Sprintf("%s，可选值（不区分大小写）: %s", p.VoiceUsage, strings.Join(p.Voices, ", "))
}

// synthesize 读取 SSML -> 确定输出路径 -> 语音合成 -> 写入文件
func synthesize(c *cli.Context, p Provider) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one SSML file is required, got %d arguments", c.NArg())
	}

	input := c.Args().First()
	if err := file.CheckInput(input); err != nil {
		return err
	}

	conf, err := configOf(c)
	if err != nil {
		return err
	}

	voiceID, err := p.ParseVoice(c.String(p.VoiceFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid value for --%s", p.VoiceFlag)
	}

	out := c.App.Writer

	fmt.Fprintf(out, "Reading SSML file: %s\n", input)
	ssml, err := file.ReadSSML(input)
	if err != nil {
		return err
	}

	explicit := c.String("output")
	output := file.ResolveOutputPath(input, voiceID, explicit)
	if explicit == "" {
		fmt.Fprintf(out, "Output file: %s\n", output)
	}

	engine, err := p.NewSynthesizer(c.Context, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := voice.Close(engine); err != nil {
			log.Warningf("close %s client failed: %v", p.ServiceName, err)
		}
	}()

	log.F(log.M{"input": input, "output": output, "voice": voiceID, "size": len(ssml)}).Debugf("synthesize with %s", p.ServiceName)

	stop := startStatus(c.App.ErrWriter, "Synthesizing speech...")
	audio, err := engine.Synthesize(c.Context, ssml, voiceID)
	stop()
	if err != nil {
		return err
	}

	if err := file.WriteAudio(output, audio); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Audio file saved: %s\n", output)
	fmt.Fprintln(out, "✓ Done")

	return nil
}

func listVoices(c *cli.Context, p Provider) error {
	conf, err := configOf(c)
	if err != nil {
		return err
	}

	engine, err := p.NewSynthesizer(c.Context, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := voice.Close(engine); err != nil {
			log.Warningf("close %s client failed: %v", p.ServiceName, err)
		}
	}()

	lister, ok := engine.(voice.Lister)
	if !ok {
		return fmt.Errorf("%s does not support listing voices", p.ServiceName)
	}

	infos, err := lister.ListVoices(c.Context, c.String("language"))
	if err != nil {
		return err
	}

	for _, info := range infos {
		// 标记当前命令可以直接使用的音色
		supported := len(p.Voices) == 0 || array.In(info.Name, p.Voices)
		fmt.Fprintf(
			c.App.Writer,
			"%s %-40s %-8s %s%s\n",
			ternary.If(supported, "*", " "),
			info.Name,
			info.Gender,
			strings.Join(info.LanguageCodes, ","),
			ternary.If(len(info.Engines) > 0, " ["+strings.Join(info.Engines, ",")+"]", ""),
		)
	}

	return nil
}

// Run 执行命令，返回进程退出码
func Run(p Provider, args []string) int {
	return Execute(NewApp(p), args)
}

// Execute 执行命令，出错时将错误信息写入 app.ErrWriter 并返回 1
func Execute(app *cli.App, args []string) int {
	if err := app.Run(reorderArgs(app, args)); err != nil {
		report(app.ErrWriter, err)
		return 1
	}

	return 0
}

func report(w io.Writer, err error) {
	if w == nil {
		return
	}

	var inputErr *file.InputError
	if errors.As(err, &inputErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "an error occurred: %v\n", err)
}
