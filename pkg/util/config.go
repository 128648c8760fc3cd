package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads data/config.yaml into viper. Every tunable has a
// viper.SetDefault at its point of use, so a missing key is never fatal
// on its own.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
