package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// initConfig wires viper: defaults, an optional config file in the user
// config directory, and TASKFLOW_* environment variables. Precedence is
// flags over environment over config file over defaults.
func initConfig() {
	viper.SetDefault("file", "tasks.json")
	viper.SetDefault("log-level", "warn")

	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "taskflow"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("TASKFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine, everything has a default.
	_ = viper.ReadInConfig()
}
