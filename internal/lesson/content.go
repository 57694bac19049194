package lesson

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var defaultLessons []byte

// SceneText is the panel content for one lesson scene.
type SceneText struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Content is the full lesson script: one entry per scene plus the contextual
// tap-to-inspect text per particle kind.
type Content struct {
	Scenes  []SceneText       `yaml:"scenes"`
	Inspect map[string]string `yaml:"inspect"`
}

// DefaultContent parses the embedded lesson script.
func DefaultContent() *Content {
	c, err := parseContent(defaultLessons)
	if err != nil {
		// The embedded script is part of the build; a parse failure here is
		// a programming error.
		panic(err)
	}
	return c
}

// LoadContent reads a lesson script from path, falling back to the embedded
// default when the file is missing. A present-but-invalid file is an error.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultContent(), nil
		}
		return nil, err
	}
	return parseContent(data)
}

func parseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse lesson content: %w", err)
	}
	if len(c.Scenes) != SceneCount {
		return nil, fmt.Errorf("lesson content has %d scenes, want %d", len(c.Scenes), SceneCount)
	}
	return &c, nil
}
