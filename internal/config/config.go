package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName          string        `mapstructure:"APP_NAME"`
	Port             int           `mapstructure:"PORT"`
	StaticDir        string        `mapstructure:"STATIC_DIR"`
	CORSAllowOrigins string        `mapstructure:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool          `mapstructure:"ENABLE_PPROF"`
	ShutdownTimeout  time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads .env (if any) into the environment and builds a Config from the
// environment and defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_NAME", "notes")
	v.SetDefault("PORT", 3001)
	v.SetDefault("STATIC_DIR", "build")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s", c.ShutdownTimeout)
	}
	return nil
}
