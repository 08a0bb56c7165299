package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/nauticalab/tosca-profile/internal/document"
)

// Package-level validator used for CLI config and command options.
var validate = validator.New(validator.WithRequiredStructEnabled())

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	// Parser selects the YAML backend: "yaml.v3" (default) or "goccy".
	Parser string `mapstructure:"parser" validate:"omitempty,oneof=yaml.v3 goccy"`
}

// LoadCLIConfig reads the CLI configuration from v. Sources, in order of
// precedence, are handled by viper:
// 1. Flags bound by the caller
// 2. Environment variables (TOSCA_PARSER)
// 3. Config file ($HOME/.tosca.yaml or --config)
func LoadCLIConfig(v *viper.Viper) (*CLIConfig, error) {
	config := &CLIConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode CLI config: %w", err)
	}
	config.Parser = strings.ToLower(strings.TrimSpace(config.Parser))

	if err := validate.Struct(config); err != nil {
		return nil, formatValidationError(err)
	}
	return config, nil
}

// ReadConfigFile reads the config file into v. An explicit path must exist
// and parse. Without one, $HOME/.tosca.yaml is read if it exists.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetConfigType("yaml")
	v.SetConfigName(".tosca")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// Backend resolves the configured parser backend.
func (c *CLIConfig) Backend() (document.Backend, error) {
	return document.ParseBackend(c.Parser)
}

// formatValidationError renders go-playground/validator errors as concise, user-facing text.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, formatFieldError(fieldError))
	}

	return fmt.Errorf("configuration validation failed:\n  - %s",
		strings.Join(errorMessages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", fieldName)
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", fieldName, fieldError.Param(), fieldError.Value())
	default:
		return fmt.Sprintf("'%s' failed validation '%s', got '%v'", fieldName, fieldError.Tag(), fieldError.Value())
	}
}
