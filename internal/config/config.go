package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jafarshop/ordernotify/pkg/errors"
)

type Config struct {
	Port        string
	Environment string
	Messaging   MessagingConfig
	Webhook     WebhookConfig
	LogLevel    string
}

// MessagingConfig holds the settings for the template-message API
type MessagingConfig struct {
	BaseURL   string `validate:"required" env:"SAAS_API_BASE_URL"`
	VendorUID string `validate:"required" env:"SAAS_VENDOR_UID"`
	Token     string `validate:"required" env:"SAAS_API_TOKEN"`
	Timeout   time.Duration
}

type WebhookConfig struct {
	// KeyHash is a bcrypt hash of the shared webhook key. Empty disables the check.
	KeyHash string
}

var validate = validator.New()

// Validate reports the environment keys that are required but empty
func (m MessagingConfig) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := &errors.ErrMissingConfig{}
	for _, fe := range verrs {
		missing.Keys = append(missing.Keys, envKey(fe.StructField()))
	}
	return missing
}

func envKey(field string) string {
	if f, ok := reflect.TypeOf(MessagingConfig{}).FieldByName(field); ok {
		if key := f.Tag.Get("env"); key != "" {
			return key
		}
	}
	return field
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SAAS_TIMEOUT_SECONDS", "30")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeoutSeconds, err := strconv.Atoi(getEnvOrViper("SAAS_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("SAAS_TIMEOUT_SECONDS must be a positive integer")
	}

	// Messaging settings are checked per request so a misconfigured
	// deployment still answers health checks and reports missing_env.
	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Messaging: MessagingConfig{
			BaseURL:   getEnvOrViper("SAAS_API_BASE_URL", ""),
			VendorUID: getEnvOrViper("SAAS_VENDOR_UID", ""),
			Token:     getEnvOrViper("SAAS_API_TOKEN", ""),
			Timeout:   time.Duration(timeoutSeconds) * time.Second,
		},
		Webhook: WebhookConfig{
			KeyHash: getEnvOrViper("WEBHOOK_KEY_HASH", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
