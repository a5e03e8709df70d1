package config

import (
	_ "embed"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/openepg/getchannels/internal/models"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNoSources is returned when a config file empties the source list.
var ErrNoSources = errors.New("at least one source is required")

// Config holds every runtime setting for an export run.
type Config struct {
	LogDir       string
	OutputDir    string
	ProbeURL     string
	ProbeTimeout time.Duration
	FetchTimeout time.Duration
	Workers      int
	UserAgent    string
	Sources      []models.Source
}

// Default returns the built-in configuration: the four stock sources,
// logs/ and data/output relative to the working directory.
func Default() (*Config, error) {
	var f fileConfig
	if err := f.decode(defaultYAML); err != nil {
		return nil, err
	}
	return f.toConfig()
}

// Load builds the runtime configuration in three layers: embedded defaults,
// then the YAML file at path if path is non-empty, then GETCHANNELS_*
// environment overrides. Unset variables are also looked up in .env.local
// and .env files next to the working directory or the executable.
func Load(path string) (*Config, error) {
	loadEnvFiles()
	var (
		c   *Config
		err error
	)
	if path != "" {
		c, err = LoadFromFile(path)
	} else {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	if s := os.Getenv("GETCHANNELS_LOG_DIR"); s != "" {
		c.LogDir = s
	}
	if s := os.Getenv("GETCHANNELS_OUTPUT_DIR"); s != "" {
		c.OutputDir = s
	}
	if s := os.Getenv("GETCHANNELS_USER_AGENT"); s != "" {
		c.UserAgent = s
	}
	if s := os.Getenv("GETCHANNELS_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			c.FetchTimeout = d
		}
	}
	if s := os.Getenv("GETCHANNELS_WORKERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			c.Workers = n
		}
	}
}
