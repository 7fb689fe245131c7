// Package config loads the marc2eprints run configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/marc2eprints/format"
)

//go:embed default.yaml
var defaultConfig []byte

// Environment variables read by ApplyEnv.
const (
	EnvConfig    = "MARC2EPRINTS_CONFIG"
	EnvInput     = "MARC2EPRINTS_INPUT"
	EnvOutput    = "MARC2EPRINTS_OUTPUT"
	EnvNamespace = "MARC2EPRINTS_NAMESPACE"
	EnvFormat    = "MARC2EPRINTS_FORMAT"
	EnvPretty    = "MARC2EPRINTS_PRETTY"
)

// Config is the run configuration.
type Config struct {
	// Namespace is the XML namespace of MARC records in the input
	Namespace string `yaml:"namespace" json:"namespace"`

	// Input is the MARCXML file to read
	Input string `yaml:"input" json:"input"`

	// Output is the file to write
	Output string `yaml:"output" json:"output"`

	// Format is the output serializer name (e.g., "eprints", "eprints-json")
	Format string `yaml:"format" json:"format"`

	// Pretty enables indented output
	Pretty bool `yaml:"pretty,omitempty" json:"pretty,omitempty"`

	// Indent is the number of spaces per level when Pretty is set
	Indent int `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := parse(defaultConfig, &Config{})
	if err != nil {
		panic(fmt.Sprintf("invalid embedded config: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(data, Default())
}

// LoadFromString reads YAML content over the defaults.
func LoadFromString(content string) (*Config, error) {
	return parse([]byte(content), Default())
}

func parse(data []byte, base *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return base, nil
}

// ApplyEnv overrides settings from environment variables. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}
	if v, ok := lookup(EnvNamespace); ok && v != "" {
		c.Namespace = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup(EnvPretty); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPretty, err)
		}
		c.Pretty = b
	}
	return nil
}

// Validate checks that the configuration can drive a conversion.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Input == c.Output {
		return fmt.Errorf("input and output must differ: %s", c.Input)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative: %d", c.Indent)
	}
	return nil
}

// ParseOptions returns parser options for this configuration.
func (c *Config) ParseOptions() *format.ParseOptions {
	opts := format.NewParseOptions()
	opts.Namespace = c.Namespace
	opts.SourceName = c.Input
	return opts
}

// SerializeOptions returns serializer options for this configuration.
func (c *Config) SerializeOptions() *format.SerializeOptions {
	opts := format.NewSerializeOptions()
	opts.Pretty = c.Pretty
	if c.Indent > 0 {
		opts.Indent = c.Indent
	}
	return opts
}
