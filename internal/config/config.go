package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL  = "https://production-calendar.ru/"
	defaultTimeout = 10 * time.Second
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents production-calendar.ru API settings
type CalendarConfig struct {
	APIURL   string `mapstructure:"api_url" validate:"required,url"`
	APIToken string `mapstructure:"api_token" validate:"required"`
	Country  string `mapstructure:"country" validate:"omitempty,alpha"`
	Region   int    `mapstructure:"region" validate:"gte=0"`
	WeekType int    `mapstructure:"week_type" validate:"oneof=5 6"`
	Timeout  string `mapstructure:"timeout"`

	// FallbackFile is an exported calendar used when the API is unreachable
	FallbackFile string `mapstructure:"fallback_file"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Load loads configuration from file. A missing file is not an error when
// configPath is empty: env variables (PRODCAL_CALENDAR_API_TOKEN, ...) may
// carry everything.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.api_url", defaultAPIURL)
	v.SetDefault("calendar.week_type", 5)
	v.SetDefault("calendar.timeout", defaultTimeout.String())
	v.SetDefault("calendar.api_token", "")
	v.SetDefault("calendar.country", "")
	v.SetDefault("calendar.region", 0)
	v.SetDefault("calendar.fallback_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.prodcal")
		v.AddConfigPath("/etc/prodcal")
	}

	// Read environment variables
	v.SetEnvPrefix("PRODCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

var validate = newValidator()

// newValidator reports fields by their mapstructure keys
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			return fld.Name
		}
		return tag
	})
	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s failed on '%s' (value %v)", fieldPath(fe.Namespace()), fe.Tag(), fe.Value())
		}
		return err
	}

	if c.Calendar.Timeout != "" {
		if _, err := time.ParseDuration(c.Calendar.Timeout); err != nil {
			return fmt.Errorf("calendar.timeout: %w", err)
		}
	}

	return nil
}

// fieldPath drops the root struct name: "Config.calendar.api_token" -> "calendar.api_token"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// GetTimeout returns the HTTP timeout duration
func (c *CalendarConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return defaultTimeout
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultTimeout
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.APIToken = os.ExpandEnv(c.Calendar.APIToken)
	c.Calendar.FallbackFile = os.ExpandEnv(c.Calendar.FallbackFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
