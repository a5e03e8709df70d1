package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openepg/getchannels/internal/models"
)

// fileConfig is the YAML shape of Config. Durations stay strings here and
// are parsed in toConfig.
type fileConfig struct {
	LogDir       string          `yaml:"log_dir"`
	OutputDir    string          `yaml:"output_dir"`
	ProbeURL     string          `yaml:"probe_url"`
	ProbeTimeout string          `yaml:"probe_timeout"`
	FetchTimeout string          `yaml:"fetch_timeout"`
	Workers      int             `yaml:"workers"`
	UserAgent    string          `yaml:"user_agent"`
	Sources      []models.Source `yaml:"sources"`
}

// LoadFromFile loads config from a YAML file layered over the embedded
// defaults: fields the file omits keep their default values, a sources list
// replaces the default one entirely.
func LoadFromFile(path string) (*Config, error) {
	var base fileConfig
	if err := base.decode(defaultYAML); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	base.merge(f)
	return base.toConfig()
}

func (f *fileConfig) decode(data []byte) error {
	if err := yaml.Unmarshal(data, f); err != nil {
		return fmt.Errorf("parse defaults: %w", err)
	}
	return nil
}

// merge overlays the set fields of o onto f.
func (f *fileConfig) merge(o fileConfig) {
	if o.LogDir != "" {
		f.LogDir = o.LogDir
	}
	if o.OutputDir != "" {
		f.OutputDir = o.OutputDir
	}
	if o.ProbeURL != "" {
		f.ProbeURL = o.ProbeURL
	}
	if o.ProbeTimeout != "" {
		f.ProbeTimeout = o.ProbeTimeout
	}
	if o.FetchTimeout != "" {
		f.FetchTimeout = o.FetchTimeout
	}
	if o.Workers > 0 {
		f.Workers = o.Workers
	}
	if o.UserAgent != "" {
		f.UserAgent = o.UserAgent
	}
	if o.Sources != nil {
		f.Sources = o.Sources
	}
}

// toConfig converts the YAML shape into a validated Config. Malformed
// durations fall back to their defaults, missing or unknown sources are
// rejected.
func (f *fileConfig) toConfig() (*Config, error) {
	c := &Config{
		LogDir:       f.LogDir,
		OutputDir:    f.OutputDir,
		ProbeURL:     f.ProbeURL,
		ProbeTimeout: 10 * time.Second,
		FetchTimeout: 40 * time.Second,
		Workers:      f.Workers,
		UserAgent:    f.UserAgent,
		Sources:      f.Sources,
	}
	if f.ProbeTimeout != "" {
		if d, err := time.ParseDuration(f.ProbeTimeout); err == nil {
			c.ProbeTimeout = d
		}
	}
	if f.FetchTimeout != "" {
		if d, err := time.ParseDuration(f.FetchTimeout); err == nil {
			c.FetchTimeout = d
		}
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if len(c.Sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range c.Sources {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return c, nil
}
