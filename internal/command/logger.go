package command

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mylxsw/asteria/formatter"
	"github.com/mylxsw/asteria/level"
	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/asteria/writer"
	"github.com/mylxsw/ssml-tts/config"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

// before 加载配置并初始化日志
func before(c *cli.Context) error {
	conf, err := config.FromContext(c)
	if err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = conf

	setupLogger(conf)
	return nil
}

// configOf 返回 before 中加载的配置
func configOf(c *cli.Context) (*config.Config, error) {
	if conf, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return conf, nil
	}

	return config.FromContext(c)
}

// setupLogger 默认只输出 Info 及以上级别的日志，指定日志目录时以 JSON 格式写入按天滚动的日志文件
func setupLogger(conf *config.Config) {
	if conf.Debug {
		log.All().LogLevel(level.Debug)
	} else {
		log.All().LogLevel(level.Info)
	}

	if conf.LogPath != "" {
		logPath := conf.LogPath
		log.All().LogFormatter(formatter.NewJSONFormatter())
		log.All().LogWriter(writer.NewDefaultRotatingFileWriter(context.TODO(), func(le level.Level, module string) string {
			return filepath.Join(logPath, fmt.Sprintf("%s.%s.log", le.GetLevelName(), time.Now().Format("20060102")))
		}))
	}
}
