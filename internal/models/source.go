package models

import "fmt"

// Source is one configured channel listing: where to fetch it, which pipeline
// parses it, and which CSV file receives the result.
type Source struct {
	Name     string `yaml:"name" json:"name"`
	URL      string `yaml:"url" json:"url"`
	Filename string `yaml:"filename" json:"filename"`
	Kind     Kind   `yaml:"kind" json:"kind"`
}

// Validate rejects incomplete sources and unknown kinds.
func (s Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if s.URL == "" {
		return fmt.Errorf("source %q: url is required", s.Name)
	}
	if s.Filename == "" {
		return fmt.Errorf("source %q: filename is required", s.Name)
	}
	switch s.Kind {
	case KindJSON, KindPlaylist:
		return nil
	default:
		return fmt.Errorf("source %q: unknown kind %q", s.Name, s.Kind)
	}
}
