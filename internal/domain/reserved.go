package domain

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed reserved/python3.yaml
var defaultReservedProfile []byte

// ReservedProfile is the on-disk shape of a reserved-name file. YAML and
// TOML files share the same keys.
type ReservedProfile struct {
	Keywords     []string `yaml:"keywords" toml:"keywords"`
	SoftKeywords []string `yaml:"soft_keywords" toml:"soft_keywords"`
	Builtins     []string `yaml:"builtins" toml:"builtins"`
	Extra        []string `yaml:"extra" toml:"extra"`
	// Replace drops the built-in profile instead of extending it.
	Replace bool `yaml:"replace" toml:"replace"`
}

// ReservedSet holds names the renamer must not touch.
type ReservedSet map[string]bool

// Reserved reports whether name keeps its spelling. Dunder-prefixed names
// are always reserved.
func (r ReservedSet) Reserved(name string) bool {
	return r[name] || strings.HasPrefix(name, "__")
}

// DefaultReservedSet returns python 3 keywords and builtins.
func DefaultReservedSet() ReservedSet {
	var profile ReservedProfile
	if err := yaml.Unmarshal(defaultReservedProfile, &profile); err != nil {
		panic(fmt.Sprintf("embedded reserved profile: %v", err))
	}

	set := ReservedSet{}
	set.add(profile)

	return set
}

// ParseReservedSet reads a profile from data, picking the decoder from the
// file extension of name, and merges it with the defaults unless the profile
// asks to replace them.
func ParseReservedSet(name string, data []byte) (ReservedSet, error) {
	var profile ReservedProfile

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &profile); err != nil {
			return nil, fmt.Errorf("decode toml profile %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("decode yaml profile %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format %q", filepath.Ext(name))
	}

	set := ReservedSet{}
	if !profile.Replace {
		set = DefaultReservedSet()
	}

	set.add(profile)

	return set, nil
}

func (r ReservedSet) add(profile ReservedProfile) {
	for _, group := range [][]string{profile.Keywords, profile.SoftKeywords, profile.Builtins, profile.Extra} {
		for _, name := range group {
			r[name] = true
		}
	}
}
