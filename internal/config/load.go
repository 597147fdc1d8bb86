package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SHELLPROMPT_PHP_DISABLED.
const EnvPrefix = "SHELLPROMPT"

// configDirFunc is replaced in tests.
var configDirFunc = defaultConfigDir

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "shellprompt")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "shellprompt")
	}
	return ""
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	return configDirFunc()
}

// Load reads configuration from path, or from SHELLPROMPT_CONFIG, or from
// config.yaml in Dir. A missing file in the default location is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir := Dir(); dir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("format", cfg.Format)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("command_timeout", cfg.CommandTimeout)

	v.SetDefault("php.format", cfg.PHP.Format)
	v.SetDefault("php.symbol", cfg.PHP.Symbol)
	v.SetDefault("php.style", cfg.PHP.Style)
	v.SetDefault("php.disabled", cfg.PHP.Disabled)

	v.SetDefault("directory.format", cfg.Directory.Format)
	v.SetDefault("directory.style", cfg.Directory.Style)
	v.SetDefault("directory.truncation_length", cfg.Directory.TruncationLength)
	v.SetDefault("directory.disabled", cfg.Directory.Disabled)

	v.SetDefault("character.format", cfg.Character.Format)
	v.SetDefault("character.success_symbol", cfg.Character.SuccessSymbol)
	v.SetDefault("character.error_symbol", cfg.Character.ErrorSymbol)
	v.SetDefault("character.success_style", cfg.Character.SuccessStyle)
	v.SetDefault("character.error_style", cfg.Character.ErrorStyle)
	v.SetDefault("character.disabled", cfg.Character.Disabled)
}
