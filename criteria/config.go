package criteria

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config declaratively describes one node of a criterion tree, for
// callers that load stopping rules from configuration files rather
// than building them in code. Exactly one field must be set per node:
//
//	# cap at 100 iterations OR a 2-minute budget
//	any:
//	  - max_iterations: 100
//	  - max_duration: 2m
//
// MaxIterations uses a pointer so that an explicit 0 (stop at
// initialization) is distinguishable from an absent field.
type Config struct {
	// MaxIterations builds AfterIteration(*MaxIterations).
	MaxIterations *int `yaml:"max_iterations,omitempty"`

	// MaxDuration builds AfterDuration of the parsed value; any string
	// accepted by time.ParseDuration, e.g. "1500ms", "2m30s".
	MaxDuration string `yaml:"max_duration,omitempty"`

	// All builds an All composite over the child nodes, in order.
	All []Config `yaml:"all,omitempty"`

	// Any builds an Any composite over the child nodes, in order.
	Any []Config `yaml:"any,omitempty"`
}

// Build materializes the criterion tree described by c.
// Returns ErrConfigEmpty or ErrConfigAmbiguous for malformed nodes and
// ErrBadDuration (wrapping the parse failure) for bad durations.
func (c Config) Build() (Criterion, error) {
	set := 0
	if c.MaxIterations != nil {
		set++
	}
	if c.MaxDuration != "" {
		set++
	}
	if c.All != nil {
		set++
	}
	if c.Any != nil {
		set++
	}
	switch {
	case set == 0:
		return nil, ErrConfigEmpty
	case set > 1:
		return nil, ErrConfigAmbiguous
	}

	switch {
	case c.MaxIterations != nil:
		return AfterIteration(*c.MaxIterations), nil

	case c.MaxDuration != "":
		d, err := time.ParseDuration(c.MaxDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadDuration, c.MaxDuration, err)
		}
		crit, err := AfterDuration(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadDuration, c.MaxDuration, err)
		}

		return crit, nil

	case c.All != nil:
		kids, err := buildChildren(c.All)
		if err != nil {
			return nil, err
		}

		return All(kids...), nil

	default: // c.Any != nil
		kids, err := buildChildren(c.Any)
		if err != nil {
			return nil, err
		}

		return Any(kids...), nil
	}
}

// buildChildren materializes each child node in order.
func buildChildren(nodes []Config) ([]Criterion, error) {
	kids := make([]Criterion, len(nodes))
	for i, n := range nodes {
		c, err := n.Build()
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		kids[i] = c
	}

	return kids, nil
}

// ParseYAML unmarshals a YAML document into a Config and builds the
// described criterion tree.
func ParseYAML(data []byte) (Criterion, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("criteria: parse config: %w", err)
	}

	return c.Build()
}
