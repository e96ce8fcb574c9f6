package book

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ProfileConfig describes a reusable, named filter pattern that can be
// applied via --profile instead of passing a raw regular expression.
type ProfileConfig struct {
	// Pattern is the regular expression tested against checksummed addresses.
	Pattern string `yaml:"pattern"`

	// Description is optional free text shown nowhere but the config file.
	Description string `yaml:"description,omitempty"`
}

// builtinProfiles contains the built-in profile definitions.
var builtinProfiles = map[string]ProfileConfig{
	// Addresses whose checksummed form starts with an uppercase hex letter.
	"upper-lead": {Pattern: `^0x[A-F]`},
	// Vanity addresses padded with leading zeros.
	"zero-lead": {Pattern: `^0x0000`},
}

// ParseCustomProfiles extracts the profiles section from raw config file
// bytes. A config file without a profiles section yields an empty map.
func ParseCustomProfiles(data []byte) (map[string]ProfileConfig, error) {
	var doc struct {
		Profiles map[string]ProfileConfig `yaml:"profiles"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	return doc.Profiles, nil
}

// ResolveProfile resolves a profile name to a compiled pattern by checking
// built-in profiles first, then custom profiles from the config file.
func ResolveProfile(name string, custom map[string]ProfileConfig) (*regexp.Regexp, error) {
	p, ok := builtinProfiles[name]
	if !ok {
		p, ok = custom[name]
	}

	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}

	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("profile %q has invalid pattern: %w", name, err)
	}

	return re, nil
}

// BuiltinProfileNames returns the names of all built-in profiles.
func BuiltinProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}

	return names
}
