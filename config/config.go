package config

import (
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "FLIGHTS"

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Input struct {
	Path   string `envconfig:"SOURCE_FILE"`
	Format string `default:"auto" envconfig:"FORMAT"`
}

type Output struct {
	Format string `default:"text" envconfig:"FORMAT"`
	Status string `envconfig:"STATUS"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"flights" envconfig:"OTEL_SERVICE_NAME"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Metrics struct {
	Dump bool `default:"false" envconfig:"DUMP"`
}

type Config struct {
	Logger  Logger
	Input   Input
	Output  Output
	Tracing Tracing
	Metrics Metrics
}

func Load() (Config, error) {
	return LoadWithPrefix(envPrefix)
}

// LoadWithPrefix — то же, что Load, но с произвольным префиксом переменных окружения (тесты).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
