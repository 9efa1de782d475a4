package config

import (
	"fmt"
	"strings"
)

const maxBufferSize = 16 << 20

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (e *ExportConfig) validate() error {
	if e.BufferSize <= 0 || e.BufferSize > maxBufferSize {
		return fmt.Errorf("buffer_size must be in 1..%d (got %d)", maxBufferSize, e.BufferSize)
	}
	if strings.TrimSpace(e.SourcePath) == "" {
		return fmt.Errorf("source path must not be empty")
	}
	if strings.TrimSpace(e.OutputPath) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if e.SourcePath == e.OutputPath {
		return fmt.Errorf("output path must differ from source path")
	}
	return nil
}
