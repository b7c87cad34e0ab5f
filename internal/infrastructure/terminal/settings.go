package terminal

import (
	"github.com/younwookim/neko/internal/domain/entity"
	"github.com/younwookim/neko/internal/infrastructure/config"
)

// Terminal cells are coarse pixels, so steering is scaled down to match.
// Speed 2 is the smallest that still moves left and up: steps round by
// adding half a unit before truncating, which turns -1 into 0.
const (
	cellSpeed    = 2
	cellDeadZone = 3
)

// Settings adapts window settings to a terminal of size cells: the pet
// and cursor occupy one cell and it spawns in the middle.
func Settings(base *config.SettingsConfig, size entity.Screen) *config.SettingsConfig {
	cfg := *base
	cfg.Display.ScreenWidth = size.Width
	cfg.Display.ScreenHeight = size.Height
	cfg.Display.Scale = 1
	cfg.Cursor = config.CursorConfig{Width: 1, Height: 1}
	cfg.Sprite.CellWidth = 1
	cfg.Sprite.CellHeight = 1
	cfg.Sprite.BorderWidth = 0
	cfg.Pet = config.PetConfig{SpawnX: size.Width / 2, SpawnY: size.Height / 2}
	cfg.Steering = config.SteeringConfig{Speed: cellSpeed, DeadZone: cellDeadZone}
	return &cfg
}
