package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is rdscapd's on-disk configuration: where to listen, where to
// write capture files, and how often to rotate them.
type Config struct {
	ListenAddr     string `yaml:"listen_addr"`
	CaptureDir     string `yaml:"capture_dir"`
	RotateEveryMiB int    `yaml:"rotate_every_mib"`
	LogLevel       string `yaml:"log_level"`

	// AllowedPIs, if non-empty, is the only set of PI codes rdscapd will
	// create Stations for; everything else is dropped at the dispatcher.
	AllowedPIs []int `yaml:"allowed_pis"`
}

// LoadConfig reads and parses a YAML configuration file, filling in
// defaults for anything left unset.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rdscapd config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rdscapd config file: %w", err)
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.CaptureDir == "" {
		config.CaptureDir = "captures"
	}
	if config.RotateEveryMiB == 0 {
		config.RotateEveryMiB = 8
	}
	if config.LogLevel == "" {
		config.LogLevel = "INFO"
	}

	return &config, nil
}
