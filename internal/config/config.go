package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`

	// --- Auth ---
	AccessTokenSecret  string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret string        `mapstructure:"REFRESH_TOKEN_SECRET"`
	AccessTokenTTL     time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL    time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`

	// --- Seed ---
	FakeUserAmount       int           `mapstructure:"FAKE_USER_AMOUNT"`
	FakePostAmount       int           `mapstructure:"FAKE_POST_AMOUNT"`
	FakeCommentAmount    int           `mapstructure:"FAKE_COMMENT_AMOUNT"`
	StoreRefreshInterval time.Duration `mapstructure:"STORE_REFRESH_INTERVAL"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))

	// секреты маскируем
	if c.AccessTokenSecret != "" {
		sb.WriteString("  AccessTokenSecret: ********\n")
	} else {
		sb.WriteString("  AccessTokenSecret: (empty)\n")
	}
	if c.RefreshTokenSecret != "" {
		sb.WriteString("  RefreshTokenSecret: ********\n")
	} else {
		sb.WriteString("  RefreshTokenSecret: (empty)\n")
	}

	sb.WriteString(fmt.Sprintf("  AccessTokenTTL: %s\n", c.AccessTokenTTL))
	sb.WriteString(fmt.Sprintf("  RefreshTokenTTL: %s\n", c.RefreshTokenTTL))
	sb.WriteString(fmt.Sprintf("  FakeUserAmount: %d\n", c.FakeUserAmount))
	sb.WriteString(fmt.Sprintf("  FakePostAmount: %d\n", c.FakePostAmount))
	sb.WriteString(fmt.Sprintf("  FakeCommentAmount: %d\n", c.FakeCommentAmount))
	sb.WriteString(fmt.Sprintf("  StoreRefreshInterval: %s\n", c.StoreRefreshInterval))

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_PORT",
		"ACCESS_TOKEN_SECRET", "REFRESH_TOKEN_SECRET",
		"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL",
		"FAKE_USER_AMOUNT", "FAKE_POST_AMOUNT", "FAKE_COMMENT_AMOUNT",
		"STORE_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "168h")
	v.SetDefault("FAKE_USER_AMOUNT", 100)
	v.SetDefault("FAKE_POST_AMOUNT", 200)
	v.SetDefault("FAKE_COMMENT_AMOUNT", 400)
	v.SetDefault("STORE_REFRESH_INTERVAL", "5m")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	return &cfg, nil
}
