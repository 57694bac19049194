// Package fonts locates an optional UI font on disk. The viewer renders fine
// with raylib's built-in font; dropping a .ttf under assets/fonts upgrades
// every text surface at once.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
// First that exists is typically used when scanning.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	return out, err
}

// Default returns the full path of the font to use for all UI text, or an
// error when none is installed. When several fonts are present, one whose
// name contains "Regular" wins.
func Default() (string, error) {
	var candidates []string
	for _, base := range BaseDirs() {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			candidates = append(candidates, base+"/"+rel)
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), "regular") {
			return c, nil
		}
	}
	return candidates[0], nil
}
