package settings

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func tempStore(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	store, err := gdata.Open(gdata.Config{AppName: "atomview_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store
}

func TestDefaults(t *testing.T) {
	s := Default()
	if !s.SoundEnabled || !s.GridVisible {
		t.Error("sound and grid should default on")
	}
	if s.Fullscreen || s.ShowFPS {
		t.Error("fullscreen and fps overlay should default off")
	}
}

func TestSaveAndReload(t *testing.T) {
	store := tempStore(t)

	m, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	m.Settings().SoundEnabled = false
	m.Settings().ShowFPS = true
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m2, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager reload: %v", err)
	}
	if m2.Settings().SoundEnabled {
		t.Error("SoundEnabled not persisted")
	}
	if !m2.Settings().ShowFPS {
		t.Error("ShowFPS not persisted")
	}
	if !m2.Settings().GridVisible {
		t.Error("GridVisible default lost on reload")
	}
}

func TestNilStoreDegrades(t *testing.T) {
	m, err := NewManager(nil)
	if err != nil {
		t.Fatalf("NewManager(nil): %v", err)
	}
	m.Settings().Fullscreen = true
	if err := m.Save(); err != nil {
		t.Errorf("Save with nil store should be a no-op, got %v", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load with nil store: %v", err)
	}
	if m.Settings().Fullscreen {
		t.Error("Load with nil store should reset to defaults")
	}
}

func TestCorruptFileFallsBack(t *testing.T) {
	store := tempStore(t)
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("{not yaml")); err != nil {
		t.Fatalf("seed corrupt data: %v", err)
	}
	m, err := NewManager(store)
	if err == nil {
		t.Error("expected an error for corrupt settings")
	}
	if m == nil || m.Settings() == nil {
		t.Fatal("manager unusable after corrupt settings")
	}
	if !m.Settings().SoundEnabled {
		t.Error("corrupt settings should fall back to defaults")
	}
}
