package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort       string `envconfig:"HTTP_PORT"        default:":8080"`
	LogLevel       string `envconfig:"LOG_LEVEL"        default:"info"`
	GinMode        string `envconfig:"GIN_MODE"         default:"release"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"true"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s, SeedSampleData=%t",
			config.HTTPPort, config.LogLevel, config.SeedSampleData)
	})
	return &config
}
