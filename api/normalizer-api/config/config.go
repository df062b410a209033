// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Application config structure
type AppConfig struct {
	Name     string `mapstructure:"service_name" validate:"required"`
	Version  string `mapstructure:"version" validate:"required"`
	Env      string `mapstructure:"env" validate:"required,oneof=production development"`
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required"`
	LogPath  string `mapstructure:"log_path"`

	// browser origins for CORS and the stream upgrade, "*" allows any
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	NormalizerConfig NormalizerConfig `mapstructure:"normalizer" validate:"required"`
	DictionaryConfig DictionaryConfig `mapstructure:"dictionary" validate:"required"`
	CacheConfig      CacheConfig      `mapstructure:"cache"`
}

// NormalizerConfig holds the instance defaults; callers override per request.
// MaxInputBytes bounds a request or stream frame, 0 means no bound.
type NormalizerConfig struct {
	EnablePreprocessing   bool     `mapstructure:"enable_preprocessing"`
	EnableTransliteration bool     `mapstructure:"enable_transliteration"`
	MaxInputBytes         int      `mapstructure:"max_input_bytes" validate:"gte=0"`
	Passes                []string `mapstructure:"passes"`
}

type DictionaryConfig struct {
	// embedded, csv, sql, redis or remote
	Source       string       `mapstructure:"source" validate:"required,oneof=embedded csv sql redis remote"`
	AcronymsPath string       `mapstructure:"acronyms_path"`
	WordsPath    string       `mapstructure:"words_path"`
	DataDir      string       `mapstructure:"data_dir"`
	Watch        bool         `mapstructure:"watch"`
	SQL          SQLConfig    `mapstructure:"sql"`
	Redis        RedisConfig  `mapstructure:"redis"`
	Remote       RemoteConfig `mapstructure:"remote"`
}

type SQLConfig struct {
	Driver string `mapstructure:"driver" validate:"omitempty,oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr        string `mapstructure:"addr"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	AcronymsKey string `mapstructure:"acronyms_key"`
	WordsKey    string `mapstructure:"words_key"`
}

type RemoteConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig bounds the normalization result cache. Texts longer than
// MaxTextBytes are not cached and nothing is added once MaxEntries are held.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	MaxEntries      int           `mapstructure:"max_entries" validate:"gte=0"`
	MaxTextBytes    int           `mapstructure:"max_text_bytes" validate:"gte=0"`
}

// reading config and intializing configs for application
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		log.Printf("no config file found, reading from env variables.")
	}
	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	// AutomaticEnv only resolves keys viper already knows about,
	// so every key gets a default here.
	v.SetDefault("SERVICE_NAME", "normalizer-api")
	v.SetDefault("VERSION", "0.0.1")
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 9090)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_PATH", "")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	v.SetDefault("NORMALIZER__ENABLE_PREPROCESSING", true)
	v.SetDefault("NORMALIZER__ENABLE_TRANSLITERATION", true)
	v.SetDefault("NORMALIZER__MAX_INPUT_BYTES", 64*1024)
	v.SetDefault("NORMALIZER__PASSES", []string{})

	v.SetDefault("DICTIONARY__SOURCE", "embedded")
	v.SetDefault("DICTIONARY__ACRONYMS_PATH", "")
	v.SetDefault("DICTIONARY__WORDS_PATH", "")
	v.SetDefault("DICTIONARY__DATA_DIR", "")
	v.SetDefault("DICTIONARY__WATCH", false)
	v.SetDefault("DICTIONARY__SQL__DRIVER", "postgres")
	v.SetDefault("DICTIONARY__SQL__DSN", "")
	v.SetDefault("DICTIONARY__REDIS__ADDR", "localhost:6379")
	v.SetDefault("DICTIONARY__REDIS__PASSWORD", "")
	v.SetDefault("DICTIONARY__REDIS__DB", 0)
	v.SetDefault("DICTIONARY__REDIS__ACRONYMS_KEY", "vietnormalizer:acronyms")
	v.SetDefault("DICTIONARY__REDIS__WORDS_KEY", "vietnormalizer:words")
	v.SetDefault("DICTIONARY__REMOTE__URL", "")
	v.SetDefault("DICTIONARY__REMOTE__TIMEOUT", "5s")

	v.SetDefault("CACHE__TTL", "10m")
	v.SetDefault("CACHE__CLEANUP_INTERVAL", "30m")
	v.SetDefault("CACHE__MAX_ENTRIES", 10000)
	v.SetDefault("CACHE__MAX_TEXT_BYTES", 4*1024)
}

// Getting application config from viper
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}

	// valdating the app config
	validate := validator.New()
	err = validate.Struct(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}

// AnyOrigin reports whether browser requests from every origin are accepted.
func (cfg *AppConfig) AnyOrigin() bool {
	if len(cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, origin := range cfg.AllowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// OriginAllowed matches origin against AllowedOrigins.
func (cfg *AppConfig) OriginAllowed(origin string) bool {
	if cfg.AnyOrigin() {
		return true
	}
	for _, allowed := range cfg.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
