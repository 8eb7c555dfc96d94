package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// AdminToken is the bearer secret accepted on the admin routes.
	AdminToken string `mapstructure:"ADMIN_TOKEN" required:"true"`
	// SeedDemoData preloads the demo orders on startup.
	SeedDemoData bool `mapstructure:"SEED_DEMO_DATA" default:"false"`

	// Redis holds the tracking cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Orders holds the order lifecycle settings.
	Orders OrdersConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection used by the tracking lookup cache.
type RedisConfig struct {
	// URL is the Redis connection URL. Empty disables the cache.
	URL string `mapstructure:"REDIS_URL"`
	// TrackingTTLSeconds is how long a tracking lookup stays cached.
	TrackingTTLSeconds int `mapstructure:"TRACKING_CACHE_TTL_SECONDS" default:"60"`
}

// TrackingTTL returns the cache TTL as a duration.
func (c RedisConfig) TrackingTTL() time.Duration {
	return time.Duration(c.TrackingTTLSeconds) * time.Second
}

// Enabled reports whether a Redis URL was configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// OrdersConfig holds tracking code and status transition settings.
type OrdersConfig struct {
	// TrackingCodePrefix is the fixed, recognizable prefix of every tracking code.
	TrackingCodePrefix string `mapstructure:"TRACKING_CODE_PREFIX" default:"TR"`
	// TrackingCodeLength is the number of random characters after the prefix.
	TrackingCodeLength int `mapstructure:"TRACKING_CODE_LENGTH" default:"9"`
	// StrictTransitions rejects status regressions such as delivered -> pending.
	StrictTransitions bool `mapstructure:"STRICT_TRANSITIONS" default:"false"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Orders.TrackingCodeLength < 6 {
		return nil, fmt.Errorf("invalid configuration: TRACKING_CODE_LENGTH must be at least 6, got %d", config.Orders.TrackingCodeLength)
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers its default in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
