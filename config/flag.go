package config

import (
	"github.com/urfave/cli/v2"
)

// Flags 所有命令共用的配置相关命令行选项
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "环境变量配置文件，文件不存在时忽略"},
		&cli.StringFlag{Name: "conf", Usage: "YAML 格式的配置文件，其中的配置项会覆盖环境变量"},
		&cli.StringFlag{Name: "log-path", Usage: "日志文件存储目录，留空则写入到标准输出"},
		&cli.BoolFlag{Name: "debug", Usage: "输出调试日志"},
	}
}

// FromContext 根据命令行选项加载配置
func FromContext(c *cli.Context) (*Config, error) {
	conf, err := Load(c.String("env-file"), c.String("conf"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("log-path") {
		conf.LogPath = c.String("log-path")
	}
	if c.Bool("debug") {
		conf.Debug = true
	}

	return conf, nil
}
