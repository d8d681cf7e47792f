package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAWSRegion Amazon Polly 默认使用的区域
const DefaultAWSRegion = "us-west-2"

type Config struct {
	// LogPath 日志文件存储目录，留空则写入到标准输出
	LogPath string `json:"log_path" yaml:"log_path"`
	// Debug 是否输出调试日志
	Debug bool `json:"debug" yaml:"debug"`

	// Amazon Polly
	AWSAccessKeyID     string `json:"aws_access_key_id" yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `json:"-" yaml:"aws_secret_access_key"`
	AWSRegion          string `json:"aws_region" yaml:"aws_region"`

	// Azure Speech Service
	AzureSpeechKey    string `json:"-" yaml:"azure_speech_key"`
	AzureSpeechRegion string `json:"azure_speech_region" yaml:"azure_speech_region"`

	// GoogleCredentialsFile 服务账号密钥文件，留空则使用 Application Default Credentials
	GoogleCredentialsFile string `json:"google_credentials_file" yaml:"google_credentials_file"`
}

// Load 加载配置，envFile 中的变量会合并到进程环境变量中（不覆盖已有值），
// confFile 不为空时，YAML 文件中的配置项会覆盖环境变量中的值
func Load(envFile string, confFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrapf(err, "load env file %s", envFile)
		}
	}

	conf := FromEnv()

	if confFile != "" {
		data, err := os.ReadFile(confFile)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "read config file")
		}

		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, pkgerrors.Wrapf(err, "parse config file %s", confFile)
		}
	}

	if conf.AWSRegion == "" {
		conf.AWSRegion = DefaultAWSRegion
	}

	return conf, nil
}

// FromEnv 从环境变量中读取配置
func FromEnv() *Config {
	return &Config{
		AWSAccessKeyID:        env("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:    env("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:             env("AWS_REGION"),
		AzureSpeechKey:        env("AZURE_SPEECH_KEY"),
		AzureSpeechRegion:     env("AZURE_SPEECH_REGION"),
		GoogleCredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
