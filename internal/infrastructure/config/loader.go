package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/neko/internal/domain/anim"
)

// SettingsFile is the settings file name inside a config directory
const SettingsFile = "neko.json"

// NekoConfig holds all loaded configurations
type NekoConfig struct {
	Settings *SettingsConfig
	Catalog  *anim.Catalog
}

// Loader loads configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem configs are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads neko.json on top of DefaultSettings, so a file may
// set only the keys it cares about.
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	cfg := DefaultSettings()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", SettingsFile, err)
	}

	return cfg, nil
}

// LoadCatalog loads an animation catalog YAML file
func (l *Loader) LoadCatalog(name string) (*anim.Catalog, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}

	return c, nil
}

// LoadAll loads settings and the catalog they reference
func (l *Loader) LoadAll() (*NekoConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	catalog := anim.DefaultCatalog()
	if settings.Catalog != "" {
		catalog, err = l.LoadCatalog(settings.Catalog)
		if err != nil {
			return nil, err
		}
	}

	return &NekoConfig{
		Settings: settings,
		Catalog:  catalog,
	}, nil
}
