package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"

	defaultConfigFile = ".enumq.yaml"
	envPrefix         = "ENUMQ"
)

// Config is the resolved configuration of a run.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Output    string `mapstructure:"output"`
}

// loadConfig binds the flags of cmd, the ENUMQ_* environment and the config file.
// A missing default config file is not an error, a missing explicit one is.
func (a *app) loadConfig(cmd *cobra.Command) (Config, error) {
	v := a.config
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	v.SetConfigFile(v.GetString(flagConfig))
	explicit := cmd.Flags().Changed(flagConfig) || v.GetString(flagConfig) != defaultConfigFile
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, ErrBadRequest.Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, ErrBadRequest.Wrap(err)
	}
	return cfg, nil
}
