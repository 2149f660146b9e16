package main

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

func loadScript(name string) ([]byte, error) {
	clean := filepath.ToSlash(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = fmt.Sprintf("scripts/%s", clean)
	}
	return scriptsFS.ReadFile(clean)
}
