package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string      `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	BoardSize    int         `yaml:"board-size" env:"TTT_BOARD_SIZE" validate:"omitempty,min=3,max=6"`
	SizeWeights  map[int]int `yaml:"size-weights" env:"TTT_SIZE_WEIGHTS" env-default:"3:6,4:4,5:2,6:1" validate:"required,dive,keys,min=3,max=6,endkeys,min=1"`
	MovePolicy   string      `yaml:"move-policy" env:"TTT_MOVE_POLICY" env-default:"strict" validate:"oneof=strict permissive"`
	DiagonalRule string      `yaml:"diagonal-rule" env:"TTT_DIAGONAL_RULE" env-default:"independent" validate:"oneof=independent combined"`
	NoColor      bool        `yaml:"no-color" env:"TTT_NO_COLOR"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the yaml file at path when it exists, otherwise only the environment.
// Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration from path and the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
