package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/todo/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix makes log_level readable from TODO_LOG_LEVEL and so on.
	envPrefix = "TODO"

	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFile     = "log_file"
	cfgKeyHistoryFile = "history_file"
)

// loadConfig reads config.yaml from configDir using Viper, layering
// environment variables and the command's flags on top. A missing
// config.yaml is not an error.
func loadConfig(cmd *cobra.Command, configDir string) (types.Config, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFile, defaults.LogFile)
	v.SetDefault(cfgKeyHistoryFile, defaults.HistoryFile)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, name := range map[string]string{
		cfgKeyLogLevel: flagLogLevel,
		cfgKeyLogFile:  flagLogFile,
	} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w: %q", err, cfg.LogLevel)
	}
	return cfg, nil
}
