// Package config loads settings from defaults, an optional YAML file, a
// .env file and ELITCARDS_* environment variables, in increasing priority.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting.
type Config struct {
	Addr           string  `mapstructure:"addr"`
	Backend        string  `mapstructure:"backend"`
	SQLitePath     string  `mapstructure:"sqlite_path"`
	RedisAddr      string  `mapstructure:"redis_addr"`
	RedisPrefix    string  `mapstructure:"redis_prefix"`
	DatabaseURL    string  `mapstructure:"database_url"`
	OnCorrupt      string  `mapstructure:"on_corrupt"`
	PasswordScheme string  `mapstructure:"password_scheme"`
	ReceiptsBucket string  `mapstructure:"receipts_bucket"`
	OTELHost       string  `mapstructure:"otel_host"`
	OTELSampling   float64 `mapstructure:"otel_sampling"`
	LogLevel       string  `mapstructure:"log_level"`
	TLSCert        string  `mapstructure:"tls_cert"`
	TLSKey         string  `mapstructure:"tls_key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8443")
	v.SetDefault("backend", "memory")
	v.SetDefault("sqlite_path", "~/.elitcards/elitcards.db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_prefix", "elitcards")
	v.SetDefault("database_url", "")
	v.SetDefault("on_corrupt", "default")
	v.SetDefault("password_scheme", "plaintext")
	v.SetDefault("receipts_bucket", "")
	v.SetDefault("otel_host", "")
	v.SetDefault("otel_sampling", 1.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("tls_cert", "")
	v.SetDefault("tls_key", "")
}

// Load reads configuration. path may be empty; a missing .env is fine.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ELITCARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
