package app

import (
	"errors"
	"fmt"
)

// Modes select the resolution direction of a run.
const (
	ModeCreate = "create"
	ModeExport = "export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode          string // "create" or "export"
	BlueprintPath string // hcl file or directory
	TopologyPath  string // hcl file or directory
	OutputPath    string // resolved JSON destination; empty means the app writer

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeCreate, ModeExport:
	default:
		return nil, fmt.Errorf("mode must be %q or %q", ModeCreate, ModeExport)
	}
	if cfg.BlueprintPath == "" {
		return nil, errors.New("BlueprintPath is a required configuration field and cannot be empty")
	}
	if cfg.TopologyPath == "" {
		return nil, errors.New("TopologyPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
