// Package configs embeds the stock settings and animation catalog shared
// by the neko commands.
package configs

import (
	"embed"

	"github.com/younwookim/neko/internal/infrastructure/config"
)

//go:embed neko.json catalog.yaml
var FS embed.FS

// NewLoader reads configs from dir, or from the embedded defaults when dir
// is empty.
func NewLoader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(FS, "embedded")
	}
	return config.NewLoader(dir)
}
