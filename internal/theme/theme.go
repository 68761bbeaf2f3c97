// Package theme persists the light/dark preference.
package theme

import (
	"fmt"

	"github.com/idilsaglam/teacherhub/internal/store"
)

// Key is the store key holding the preference.
const Key = "theme"

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Parse maps stored text to a mode. Anything but "dark" is Light.
func Parse(s string) Mode {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Load reads the preference; an absent key is Light.
func Load(s store.Store) (Mode, error) {
	v, _, err := s.Get(Key)
	if err != nil {
		return Light, fmt.Errorf("load theme: %w", err)
	}
	return Parse(v), nil
}

func Save(s store.Store, m Mode) error {
	if err := s.Set(Key, string(Parse(string(m)))); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Toggle flips and persists the preference, returning the new mode.
func Toggle(s store.Store) (Mode, error) {
	m, err := Load(s)
	if err != nil {
		return m, err
	}
	m = m.Toggled()
	return m, Save(s, m)
}
