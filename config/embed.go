package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specsFS embed.FS

// Load reads an authored spec by name, preferring an on-disk copy under
// config/ so edits take effect without rebuilding, and falling back to the
// embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

// LoadZoomSpec loads and validates a zoom spec by name.
func LoadZoomSpec(name string) (*Settings, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	settings, err := ParseZoomSpec(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return settings, nil
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}

func diskSpecPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
