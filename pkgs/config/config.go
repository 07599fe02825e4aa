package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration is the dsctl harness's on-disk configuration, read from
// a ".dsctl" file the way the teacher reads its ".rb" file.
type Configuration struct {
	Team Team
	Log  Log
}

// Team holds the default team number and simulator preference.
type Team struct {
	Number     uint16
	Simulation bool
}

// Log controls the logrus verbosity.
type Log struct {
	Level string
}

// NewConfig loads configuration from "$HOME/.dsctl.yaml" or "./.dsctl.yaml",
// falling back to documented defaults when no file is present.
func NewConfig() (*Configuration, error) {
	config := Configuration{}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".dsctl")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")

	v.SetDefault("team.number", 0)
	v.SetDefault("team.simulation", false)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
		}
	}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}

	return &config, nil
}
