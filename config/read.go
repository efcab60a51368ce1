package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/saludmaterna/maternidad_backend/pkg/constants"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. MATERNIDAD_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("MATERNIDAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The file is optional in containerized deployments as long as the
		// database can be reached through env vars.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("MATERNIDAD_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

// Validate checks the invariants the rest of the system assumes.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Authentication.EncryptionKey == "" {
		return errors.New("authentication.encryption_key is required")
	}
	if len(c.Authentication.EncryptionKey) != 64 {
		return errors.New("authentication.encryption_key must be 64 hex chars (32 bytes)")
	}
	if c.Authorization.CasbinModelPath == "" {
		c.Authorization.CasbinModelPath = "casbin_model.conf"
	}
	if c.Authentication.DefaultPasswordLength <= 0 {
		c.Authentication.DefaultPasswordLength = 12
	}
	return nil
}
