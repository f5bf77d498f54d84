package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rpgo/pricefmt/internal/logging"
	"github.com/rpgo/pricefmt/pkg/priceformat"
	"gopkg.in/yaml.v3"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileSet is a validated collection of named formatter configurations.
type ProfileSet struct {
	// Default names the profile used when none is requested. It may be empty.
	Default  string
	Profiles map[string]priceformat.Config
}

// profileFile mirrors the on-disk YAML layout. Profiles stay raw option
// mappings so unknown keys are reported by priceformat.
type profileFile struct {
	Default  string                    `yaml:"default"`
	Profiles map[string]map[string]any `yaml:"profiles"`
}

// ProfileParser handles parsing of formatter profile files
type ProfileParser struct {
	logger logging.Logger
}

// NewProfileParser creates a new profile parser. A nil logger discards output.
func NewProfileParser(logger logging.Logger) *ProfileParser {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &ProfileParser{logger: logger}
}

// LoadFromFile loads profiles from a YAML file
func (pp *ProfileParser) LoadFromFile(filename string) (*ProfileSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	pp.logger.Debugf("read profiles file %s (%d bytes)", filename, len(data))

	set, err := pp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	pp.logger.Infof("loaded %d profiles from %s", len(set.Profiles), filename)
	return set, nil
}

// Parse decodes and validates a profiles document.
func (pp *ProfileParser) Parse(data []byte) (*ProfileSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw profileFile
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no profiles provided")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	set := &ProfileSet{
		Default:  raw.Default,
		Profiles: make(map[string]priceformat.Config, len(raw.Profiles)),
	}
	for name, options := range raw.Profiles {
		cfg, err := priceformat.ConfigFromMap(options)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		set.Profiles[name] = cfg
	}

	if err := pp.ValidateProfiles(set); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return set, nil
}

// ValidateProfiles validates a loaded profile set
func (pp *ProfileParser) ValidateProfiles(set *ProfileSet) error {
	if len(set.Profiles) == 0 {
		return fmt.Errorf("no profiles provided")
	}
	if set.Default != "" {
		if _, ok := set.Profiles[set.Default]; !ok {
			return fmt.Errorf("default profile %q: %w", set.Default, ErrProfileNotFound)
		}
	}
	for _, name := range set.Names() {
		if name == "" {
			return fmt.Errorf("profile name is required")
		}
		if err := set.Profiles[name].Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

// Names returns the profile names in sorted order.
func (s *ProfileSet) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config resolves a profile by name. An empty name selects the default
// profile, or priceformat.DefaultConfig when the set has none.
func (s *ProfileSet) Config(name string) (priceformat.Config, error) {
	if name == "" {
		name = s.Default
	}
	if name == "" {
		return priceformat.DefaultConfig(), nil
	}
	cfg, ok := s.Profiles[name]
	if !ok {
		return priceformat.Config{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return cfg, nil
}

