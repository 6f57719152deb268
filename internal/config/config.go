package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tidewatch/backend/pkg/classifier"
	"github.com/tidewatch/backend/pkg/mq"
	"github.com/tidewatch/backend/pkg/mysql"
	"github.com/tidewatch/backend/pkg/objectstore"
)

type Config struct {
	API        API               `mapstructure:"api"`
	Database   mysql.Config      `mapstructure:"database"`
	Redis      Redis             `mapstructure:"redis"`
	RabbitMQ   mq.Config         `mapstructure:"rabbitmq"`
	Classifier classifier.Config `mapstructure:"classifier"`
	Storage    objectstore.Config `mapstructure:"storage"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Redis struct {
	Addr string `mapstructure:"addr"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
