package graphfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/core"
)

// ErrBadPreset indicates a preset string that cannot be parsed.
var ErrBadPreset = errors.New("graphfile: bad preset")

// Preset defaults.
const (
	DefaultDensity   = 0.3
	DefaultSeed      = 1
	DefaultMaxWeight = 9
)

// PresetOptions tunes preset expansion.
type PresetOptions struct {
	// MaxWeight bounds random weights; weights are drawn from 1..MaxWeight.
	MaxWeight int64
	// Seed is used when the preset itself names none.
	Seed int64
	// Density is used by random presets that name none.
	Density float64
}

// PresetOption configures PresetOptions.
type PresetOption func(*PresetOptions)

// WithMaxWeight sets the upper weight bound. Panics if max < 1.
func WithMaxWeight(max int64) PresetOption {
	if max < 1 {
		panic("graphfile: WithMaxWeight(max<1)")
	}
	return func(o *PresetOptions) { o.MaxWeight = max }
}

// WithSeed sets the fallback seed.
func WithSeed(seed int64) PresetOption {
	return func(o *PresetOptions) { o.Seed = seed }
}

// WithDensity sets the fallback density. Panics outside [0,1].
func WithDensity(p float64) PresetOption {
	if p < 0 || p > 1 {
		panic("graphfile: WithDensity(p out of [0,1])")
	}
	return func(o *PresetOptions) { o.Density = p }
}

// Preset builds a lettered graph from "cycle:N", "path:N", "complete:N" or
// "random:N[:density[:seed]]". Random presets are always connected.
func Preset(spec string, opts ...PresetOption) (*core.Graph, error) {
	o := PresetOptions{MaxWeight: DefaultMaxWeight, Seed: DefaultSeed, Density: DefaultDensity}
	for _, opt := range opts {
		opt(&o)
	}

	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q: want kind:N", ErrBadPreset, spec)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: size: %w", ErrBadPreset, spec, err)
	}

	kind := strings.ToLower(parts[0])
	if kind != "random" && len(parts) > 2 {
		return nil, fmt.Errorf("%w: %q: %s takes only a size", ErrBadPreset, spec, kind)
	}
	var ctor builder.Constructor
	switch kind {
	case "cycle":
		ctor = builder.Cycle(n)
	case "path":
		ctor = builder.Path(n)
	case "complete":
		ctor = builder.Complete(n)
	case "random":
		if len(parts) > 4 {
			return nil, fmt.Errorf("%w: %q: want random:N[:density[:seed]]", ErrBadPreset, spec)
		}
		if len(parts) > 2 {
			if o.Density, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, fmt.Errorf("%w: %q: density: %w", ErrBadPreset, spec, err)
			}
		}
		if len(parts) > 3 {
			if o.Seed, err = strconv.ParseInt(parts[3], 10, 64); err != nil {
				return nil, fmt.Errorf("%w: %q: seed: %w", ErrBadPreset, spec, err)
			}
		}
		ctor = builder.Connected(n, o.Density)
	default:
		return nil, fmt.Errorf("%w: %q: unknown kind %q", ErrBadPreset, spec, parts[0])
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(o.Seed),
		builder.WithLetterIDs(),
		builder.WithWeightRange(1, o.MaxWeight),
	}, ctor)
	if err != nil {
		return nil, fmt.Errorf("graphfile: preset %q: %w", spec, err)
	}

	return g, nil
}
