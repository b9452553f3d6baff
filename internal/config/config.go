package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type AIConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	Model         string        `mapstructure:"model"`
	Retries       int           `mapstructure:"retries"`
	InitialDelay  time.Duration `mapstructure:"initial_delay"`
	MaxDelay      time.Duration `mapstructure:"max_delay"`
	BreakerWindow time.Duration `mapstructure:"breaker_window"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type MailConfig struct {
	Region string `mapstructure:"region"`
	From   string `mapstructure:"from"`
}

type SyncConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Mail     MailConfig     `mapstructure:"mail"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
}

// Load reads config.yaml (if present) and the environment, env winning.
// Variables follow the section_key scheme, e.g. AI_API_KEY, DATABASE_URL.
func Load() (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	// empty defaults register the keys so AutomaticEnv can fill them
	v.SetDefault("database.url", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("mail.region", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.retries", 2)
	v.SetDefault("ai.initial_delay", 1500*time.Millisecond)
	v.SetDefault("ai.max_delay", 60*time.Second)
	v.SetDefault("ai.breaker_window", 30*time.Minute)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("sync.debounce", 2*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("store.dir", ".resume-builder")
}

func validate(cfg *Config) error {
	if cfg.AI.Retries < 0 {
		return fmt.Errorf("config: ai.retries must be >= 0")
	}
	return nil
}
