package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"DEBUG"`

		Server  HTTPServerProperties `envPrefix:"HTTP_"`
		Mongo   MongoProperties      `envPrefix:"MONGO_"`
		Content ContentProperties    `envPrefix:"CONTENT_"`
	}

	HTTPServerProperties struct {
		Port string `env:"PORT" envDefault:"3000"`
	}

	MongoProperties struct {
		URI            string        `env:"URI" envDefault:"mongodb://127.0.0.1:27017"`
		Database       string        `env:"DATABASE" envDefault:"project6"`
		ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	}

	ContentProperties struct {
		// Dir is the flat directory uploaded photo binaries live in,
		// served statically under /images.
		Dir string `env:"DIR" envDefault:"./images"`
	}
)

func ReadProperties() (*Properties, error) {
	properties := &Properties{}
	if err := env.Parse(properties); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return properties, nil
}
