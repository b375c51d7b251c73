// Package theme holds the light/dark preference. It is read once when a page
// loads and written back on every toggle.
package theme

import "sync"

// StorageKey is the key the preference is stored under.
const StorageKey = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse returns the theme named by s.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Store is a key-value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Preference is the accessor for the current theme.
type Preference struct {
	store   Store
	current Theme
}

// Load reads the saved theme from store, falling back to system when nothing
// valid is saved.
func Load(store Store, system Theme) *Preference {
	current := system
	if v, ok := store.Get(StorageKey); ok {
		if t, ok := Parse(v); ok {
			current = t
		}
	}
	if current != Dark {
		current = Light
	}
	return &Preference{store: store, current: current}
}

func (p *Preference) Current() Theme { return p.current }

// Toggle flips the theme and persists it.
func (p *Preference) Toggle() Theme {
	if p.current == Dark {
		p.current = Light
	} else {
		p.current = Dark
	}
	p.store.Set(StorageKey, string(p.current))
	return p.current
}

// SystemPreference maps the Sec-CH-Prefers-Color-Scheme client hint.
func SystemPreference(hint string) Theme {
	if hint == "dark" || hint == `"dark"` {
		return Dark
	}
	return Light
}

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
