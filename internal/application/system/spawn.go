package system

import (
	"github.com/younwookim/neko/internal/domain/anim"
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// ScreenOf returns the screen described by the display settings
func ScreenOf(cfg *config.SettingsConfig) entity.Screen {
	return entity.Screen{Width: cfg.Display.ScreenWidth, Height: cfg.Display.ScreenHeight}
}

// CursorOf returns the cursor footprint from settings
func CursorOf(cfg *config.SettingsConfig) entity.Size {
	return entity.Size{W: cfg.Cursor.Width, H: cfg.Cursor.Height}
}

// SpawnPet converts settings into a pet at its configured spawn point
func SpawnPet(cfg *config.SettingsConfig, catalog *anim.Catalog) *entity.Pet {
	spawn := entity.Point{X: cfg.Pet.SpawnX, Y: cfg.Pet.SpawnY}
	footprint := entity.Size{W: cfg.Sprite.CellWidth, H: cfg.Sprite.CellHeight}
	return entity.NewPet(catalog, spawn, footprint)
}
