package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Captcha  CaptchaConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AuthConfig holds the shared secret used to verify bearer tokens
// issued by the external identity provider.
type AuthConfig struct {
	JWTSecret string
}

type CaptchaConfig struct {
	Secret    string
	VerifyURL string
}

type EmailConfig struct {
	APIKey     string
	From       string
	AdminEmail string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("HCAPTCHA_VERIFY_URL", "https://api.hcaptcha.com/siteverify")
	viper.SetDefault("EMAIL_FROM", "Wonder Rides <notifications@themnhwonderrides.com>")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("AUTH_JWT_SECRET"),
		},
		Captcha: CaptchaConfig{
			Secret:    viper.GetString("HCAPTCHA_SECRET_KEY"),
			VerifyURL: viper.GetString("HCAPTCHA_VERIFY_URL"),
		},
		Email: EmailConfig{
			APIKey:     viper.GetString("RESEND_API_KEY"),
			From:       viper.GetString("EMAIL_FROM"),
			AdminEmail: viper.GetString("ADMIN_EMAIL"),
		},
	}

	return config, nil
}
