package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// demoConfig is the YAML file shape for the demo viewer
type demoConfig struct {
	Threshold float64 `yaml:"threshold"`
	Snap      struct {
		Enabled  bool   `yaml:"enabled"`
		Duration string `yaml:"duration"`
		Easing   string `yaml:"easing"`
	} `yaml:"snap"`
	Audio    bool `yaml:"audio"`
	Sections []struct {
		Title string `yaml:"title"`
		Lines int    `yaml:"lines"`
	} `yaml:"sections"`
}

func defaultDemoConfig() demoConfig {
	var cfg demoConfig
	cfg.Threshold = 0.5
	cfg.Snap.Enabled = true
	cfg.Snap.Duration = "600ms"
	cfg.Snap.Easing = "ease-in-out-quad"
	cfg.Audio = true
	for _, title := range []string{"Overview", "Getting Started", "Configuration", "Navigation", "Teardown"} {
		cfg.Sections = append(cfg.Sections, struct {
			Title string `yaml:"title"`
			Lines int    `yaml:"lines"`
		}{Title: title, Lines: 30})
	}
	return cfg
}

// loadDemoConfig reads path, falling back to defaults when path is empty
func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Sections) == 0 {
		return cfg, fmt.Errorf("config declares no sections")
	}
	return cfg, nil
}

// snapDuration parses the configured duration, 0 on a bad value
func (c demoConfig) snapDuration() time.Duration {
	d, err := time.ParseDuration(c.Snap.Duration)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
