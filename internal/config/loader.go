package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigFile is read when CONFIG_PATH is unset and the file exists.
const defaultConfigFile = "./config.yaml"

// Load builds the edict2js configuration. Values come from the YAML file
// named by CONFIG_PATH (or ./config.yaml when present), then from
// LOG_LEVEL, LOG_FORMAT, EDICT_SUBSET and EDICT_BUFFER_SIZE, then from
// defaults. The dictionary and script paths are always edict2 and
// edict2.js in the working directory and cannot be configured.
func Load() (*Config, error) {
	var cfg Config

	path, required := configFile()
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case !required && errors.Is(statErr, fs.ErrNotExist):
		// No config file: environment and defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	}

	cfg.Export.SourcePath = DefaultSourcePath
	cfg.Export.OutputPath = DefaultOutputPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// configFile returns the YAML path and whether it was asked for explicitly.
func configFile() (string, bool) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path, true
	}
	return defaultConfigFile, false
}
