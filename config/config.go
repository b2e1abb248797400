package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"port"`
	MongoURI       string `mapstructure:"MONGODB_URI"`
	Database       string `mapstructure:"database"`
	CORSOrigin     string `mapstructure:"cors_origin"`
	GinReleaseMode bool   `mapstructure:"gin_release_mode"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("MONGODB_URI")

	v.SetDefault("port", "8080")
	v.SetDefault("database", "taskmanager")
	v.SetDefault("cors_origin", "*")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
