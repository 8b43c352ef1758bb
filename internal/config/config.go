package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from a YAML file and environment variables.
type Config struct {
	Env    string `mapstructure:"env"` // local, dev, production
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"` // session liveness marker TTL
	} `mapstructure:"redis"`
	Postgres struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"postgres"`
	Quiz struct {
		TTL        time.Duration `mapstructure:"ttl"`         // question set cache TTL
		SetsFile   string        `mapstructure:"sets_file"`   // YAML question sets, used when postgres is not configured
		DefaultSet string        `mapstructure:"default_set"` // set played when none is requested
	} `mapstructure:"quiz"`
}

// Load reads configuration from path (a missing file is not an error) and
// overlays environment variables, e.g. REDIS_ADDR or POSTGRES_URL.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("env", "local")
	v.SetDefault("server.port", "8080")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")
	v.SetDefault("postgres.url", "")
	v.SetDefault("quiz.ttl", "10m")
	v.SetDefault("quiz.sets_file", "data/questions.yaml")
	v.SetDefault("quiz.default_set", "basics")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}
