// Package config loads default solve options from a YAML file, grounded on
// AlejandroRuiz99-polybot's config.Load pattern (struct tags + yaml.v3,
// failing loudly on a malformed file but tolerating a missing one).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/ganger/internal/ganging"
)

// Defaults are the options.* fields used when a request omits them.
type Defaults struct {
	TimeoutSeconds    int              `yaml:"timeoutSeconds"`
	NumberOfSolutions int              `yaml:"numberOfSolutions"`
	Penalties         ganging.Penalties `yaml:"penalties"`
}

// DefaultDefaults is what a brand new installation uses with no config file
// present: a 30 second budget, a single ranked solution, and no diversity
// penalty.
func DefaultDefaults() Defaults {
	return Defaults{
		TimeoutSeconds:    30,
		NumberOfSolutions: 1,
	}
}

// Load reads a YAML defaults file at path. A missing file is not an error:
// it returns DefaultDefaults(). A present-but-malformed file is.
func Load(path string) (Defaults, error) {
	d := DefaultDefaults()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return Defaults{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return d, nil
}

// ApplyTo fills in zero-valued fields of opts with d's defaults,
// leaving anything the request already specified untouched.
func (d Defaults) ApplyTo(opts ganging.Options) ganging.Options {
	if opts.TimeoutSeconds == 0 {
		opts.TimeoutSeconds = d.TimeoutSeconds
	}
	if opts.NumberOfSolutions == 0 {
		opts.NumberOfSolutions = d.NumberOfSolutions
	}
	if opts.Penalties == (ganging.Penalties{}) {
		opts.Penalties = d.Penalties
	}
	return opts
}
