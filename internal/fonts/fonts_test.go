package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanDirFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Inter")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Inter/Inter-Regular.ttf", "Inter/OFL.txt", "Mono.otf"} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ScanDir = %v, want 2 font files", got)
	}
	for _, rel := range got {
		if rel != "Inter/Inter-Regular.ttf" && rel != "Mono.otf" {
			t.Errorf("unexpected entry %q", rel)
		}
	}
}

func TestScanDirMissingDir(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ScanDir = %v, want empty", got)
	}
}
