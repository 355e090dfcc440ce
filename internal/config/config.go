// Package config は環境変数、.env、任意の設定ファイルからアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TATTOO"

// Config はアプリケーション全体の設定です。
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Gemini GeminiConfig `mapstructure:"gemini" validate:"required"`
	Prompt PromptConfig `mapstructure:"prompt" validate:"required"`
}

// ServerConfig は HTTP サーバーとログの設定です。
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
	// Exclusive が true の場合、同時に 1 件の生成だけを受け付けます。
	Exclusive bool `mapstructure:"exclusive"`
}

// GeminiConfig は画像生成サービスの設定です。
// APIKey は読み込み時には必須にしません。未設定は生成リクエストごとに ConfigurationError として扱います。
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model" validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// PromptConfig はプロンプト生成の設定です。
type PromptConfig struct {
	Language string `mapstructure:"language" validate:"required,oneof=en pt-BR"`
}

// Load は設定を読み込み、検証して返します。
// configFile が空の場合はカレントディレクトリの config.{yaml,json,toml} を探し、無ければ無視します。
// 優先順位は 環境変数 > 設定ファイル > 既定値 です。
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 既存の環境で使われてきた変数名も受け付ける
	if err := v.BindEnv("gemini.api_key", envPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.exclusive", true)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash-image")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("gemini.timeout", "0s")
	v.SetDefault("prompt.language", "en")
}
