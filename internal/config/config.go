package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	API    API    `mapstructure:"api"`
	Static Static `mapstructure:"static"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Static struct {
	Dir string `mapstructure:"dir"`
}

// Load reads ./config/config.yml if present. The file is optional; the demo
// server must come up with no setup at all, so every key has a default.
func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", "8000")
	viper.SetDefault("static.dir", "./demo")

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
