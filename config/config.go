package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name    string
		Port    string
		Env     string
		Secret  string
		BaseURL string
	}
	Database struct {
		Dsn          string
		SqlitePath   string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	Mail struct {
		Host     string
		Port     string
		From     string
		Password string
	}
	Image struct {
		ImgbbKey string
	}
}

// Load reads config/config.yml and applies environment overrides for the
// secrets that should not live in the file.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = getEnvOrDefault("ENV", cfg.App.Env)
	cfg.App.Secret = getEnvOrDefault("SECRET_KEY", cfg.App.Secret)
	cfg.Database.Dsn = getEnvOrDefault("DB_DSN", cfg.Database.Dsn)
	cfg.Mail.Password = getEnvOrDefault("MAIL_PASSWORD", cfg.Mail.Password)
	cfg.Image.ImgbbKey = getEnvOrDefault("IMGBB_KEY", cfg.Image.ImgbbKey)

	if cfg.RabbitMQ.Queue == "" {
		cfg.RabbitMQ.Queue = "mail.queue"
	}
	if cfg.Database.SqlitePath == "" {
		cfg.Database.SqlitePath = "site.db"
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
