// Package settings persists user preferences across runs via gdata's
// cross-platform storage, serialized as YAML. A nil storage manager degrades
// to in-memory settings without error, so the app keeps working when the
// config directory is unavailable.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the viewer's persisted preferences.
type Settings struct {
	SoundEnabled bool `yaml:"soundEnabled"`
	Fullscreen   bool `yaml:"fullscreen"`
	ShowFPS      bool `yaml:"showFps"`
	GridVisible  bool `yaml:"gridVisible"`
}

// Default returns the out-of-the-box preferences: sound on, windowed,
// overlays off, surface grid on.
func Default() *Settings {
	return &Settings{
		SoundEnabled: true,
		Fullscreen:   false,
		ShowFPS:      false,
		GridVisible:  true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves Settings. The gdata manager may be nil, in which
// case settings live only in memory for the session.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager and loads any previously saved
// settings. A load failure is not fatal; defaults are used.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load reads settings from storage. Missing storage or a missing file leaves
// the defaults in place; a corrupt file also falls back to defaults and
// reports the error.
func (m *Manager) Load() error {
	if m.store == nil {
		m.settings = Default()
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Default()
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Default()
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Default()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	m.settings = &loaded
	return nil
}

// Save writes the current settings to storage. With no storage it is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Settings returns the live settings struct. Mutate it, then call Save.
func (m *Manager) Settings() *Settings {
	return m.settings
}
