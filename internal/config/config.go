// internal/config/config.go
//
// Runtime configuration for the stepwise CLI, read from stepwise.yaml.
// A missing file is not an error: defaults apply, and flags override both.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up when no path is given.
const FileName = "stepwise.yaml"

// Output formats for event streams.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const (
	defaultLogLevel     = "info"
	defaultArraySize    = 20
	defaultArrayMax     = 100
	defaultArraySeed    = 1
	defaultGraphNodes   = 6
	defaultGraphDensity = 0.3
	defaultGraphSeed    = 1
	defaultMaxWeight    = 9
)

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration time.Duration

// UnmarshalYAML accepts "250ms"-style strings.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ArrayConfig drives random arrays for sort runs.
type ArrayConfig struct {
	Size int   `yaml:"size"`
	Max  int64 `yaml:"max"`
	Seed int64 `yaml:"seed"`
}

// GraphConfig drives random graphs for traversal and MST runs.
type GraphConfig struct {
	Nodes     int     `yaml:"nodes"`
	Density   float64 `yaml:"density"`
	Seed      int64   `yaml:"seed"`
	MaxWeight int64   `yaml:"max_weight"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Config models stepwise.yaml.
type Config struct {
	Delay    Duration      `yaml:"delay"`
	LogLevel string        `yaml:"log_level"`
	Output   string        `yaml:"output"`
	Array    ArrayConfig   `yaml:"array"`
	Graph    GraphConfig   `yaml:"graph"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Output:   OutputText,
		Array: ArrayConfig{
			Size: defaultArraySize,
			Max:  defaultArrayMax,
			Seed: defaultArraySeed,
		},
		Graph: GraphConfig{
			Nodes:     defaultGraphNodes,
			Density:   defaultGraphDensity,
			Seed:      defaultGraphSeed,
			MaxWeight: defaultMaxWeight,
		},
	}
}

// Load reads path. A missing file yields Default(); fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// DelayDuration returns the pacing delay as a time.Duration.
func (c Config) DelayDuration() time.Duration {
	return time.Duration(c.Delay)
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Array.Max == 0 {
		c.Array.Max = def.Array.Max
	}
	if c.Graph.MaxWeight == 0 {
		c.Graph.MaxWeight = def.Graph.MaxWeight
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Delay < 0 {
		result = multierror.Append(result, fmt.Errorf("delay must not be negative, got %s", time.Duration(c.Delay)))
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		result = multierror.Append(result, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output))
	}
	if c.Array.Size < 0 {
		result = multierror.Append(result, fmt.Errorf("array.size must not be negative, got %d", c.Array.Size))
	}
	if c.Array.Max < 1 {
		result = multierror.Append(result, fmt.Errorf("array.max must be at least 1, got %d", c.Array.Max))
	}
	if c.Graph.Nodes < 1 {
		result = multierror.Append(result, fmt.Errorf("graph.nodes must be at least 1, got %d", c.Graph.Nodes))
	}
	if c.Graph.Density < 0 || c.Graph.Density > 1 {
		result = multierror.Append(result, fmt.Errorf("graph.density must be in [0,1], got %g", c.Graph.Density))
	}
	if c.Graph.MaxWeight < 1 {
		result = multierror.Append(result, fmt.Errorf("graph.max_weight must be at least 1, got %d", c.Graph.MaxWeight))
	}

	return result.ErrorOrNil()
}
