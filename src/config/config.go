package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Seed for the random source. 0 means derive the seed from the wall
	// clock at startup.
	Seed uint64 `yaml:"seed"`

	// How many numbers to display per demonstration.
	Repetitions uint64 `yaml:"repetitions"`

	Range RangeConfig `yaml:"range"`
}

type RangeConfig struct {
	// Inclusive bounds used for the ranged demonstration.
	Low  int64 `yaml:"low"`
	High int64 `yaml:"high"`
}

func Default() Config {
	return Config{
		Seed:        0,
		Repetitions: 10,
		Range: RangeConfig{
			Low:  200,
			High: 300,
		},
	}
}

func LoadFromFile(path string) (Config, error) {
	config := Default()

	buffer, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config file: path=%s %w", path, err)
	}

	if err := yaml.Unmarshal(buffer, &config); err != nil {
		return config, fmt.Errorf("parsing config file: path=%s %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("validating config file: path=%s %w", path, err)
	}

	return config, nil
}

func (config Config) Validate() error {
	if config.Range.High < config.Range.Low {
		return fmt.Errorf("invalid range: low %d is greater than high %d", config.Range.Low, config.Range.High)
	}

	if config.Repetitions == 0 {
		return fmt.Errorf("repetitions must be greater than 0")
	}

	return nil
}
