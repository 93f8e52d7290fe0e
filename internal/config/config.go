// Package config loads CLI settings from flags, environment variables and an
// optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load returns a viper instance with the named flags bound to it.
//
// Keys are the flag names. Environment variables use envPrefix and upper
// case with dashes replaced by underscores, so the "output-dir" key is read
// from PLANTPLOT_OUTPUT_DIR when envPrefix is "PLANTPLOT". A flag set on the
// command line always wins over the environment, which wins over the file.
func Load(flags *pflag.FlagSet, envPrefix, configFile string, keys ...string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil {
			return nil, fmt.Errorf("unknown config key %q", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return v, nil
}
