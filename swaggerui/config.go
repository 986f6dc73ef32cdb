package swaggerui

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config controls what the responder serves.
type Config struct {
	// SpecFileName is the relative path answered with the YAML document.
	SpecFileName string `yaml:"spec_file_name"`
	// SpecURL replaces the default document URL in index.html.
	SpecURL string `yaml:"spec_url"`
	// HideTopbar injects a style element hiding the Swagger UI top bar.
	HideTopbar bool `yaml:"hide_topbar"`
}

// DefaultConfig returns the defaults: swagger.yaml served next to the UI.
func DefaultConfig() Config {
	return Config{SpecFileName: "swagger.yaml", SpecURL: "./swagger.yaml"}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SpecFileName == "" {
		c.SpecFileName = def.SpecFileName
	}
	if c.SpecURL == "" {
		c.SpecURL = "./" + c.SpecFileName
	}
	return c
}

// LoadConfig decodes a YAML config. Unknown keys and duplicate keys are
// errors; an empty document yields the defaults.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("swaggerui: decode config: %w", err)
	}
	return cfg.withDefaults(), nil
}
