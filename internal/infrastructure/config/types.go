package config

import (
	"errors"
	"fmt"
)

// SettingsConfig is the root config for neko.json
type SettingsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Cursor   CursorConfig   `json:"cursor"`
	Pet      PetConfig      `json:"pet"`
	Sprite   SpriteConfig   `json:"sprite"`
	Steering SteeringConfig `json:"steering"`
	Clocks   ClocksConfig   `json:"clocks"`
	Pointer  PointerConfig  `json:"pointer"`
	Catalog  string         `json:"catalog"` // YAML catalog file; empty = built-in table
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// CursorConfig is the pointer footprint. The steering target is the
// footprint's centre.
type CursorConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type PetConfig struct {
	SpawnX int `json:"spawnX"`
	SpawnY int `json:"spawnY"`
}

// SpriteConfig describes the sprite grid. Sheet is optional; without it
// the renderer generates a placeholder grid.
type SpriteConfig struct {
	Sheet       string `json:"sheet"`
	CellWidth   int    `json:"cellWidth"`
	CellHeight  int    `json:"cellHeight"`
	BorderWidth int    `json:"borderWidth"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
}

type SteeringConfig struct {
	Speed    int `json:"speed"`    // pixels per animation tick
	DeadZone int `json:"deadZone"` // radius in pixels inside which the pet idles
}

// ClocksConfig divides the display framerate into the two logical clocks.
// A value of N fires the clock on every Nth display tick.
type ClocksConfig struct {
	PointerEvery   int `json:"pointerEvery"`
	AnimationEvery int `json:"animationEvery"`
}

// PointerConfig configures relative pointer devices.
// Raw relative motion is divided by RelativeScale before it is applied.
type PointerConfig struct {
	RelativeScale int `json:"relativeScale"`
}

// DefaultSteering returns the stock pet speed and dead zone
func DefaultSteering() SteeringConfig {
	return SteeringConfig{Speed: 5, DeadZone: 40}
}

// DefaultSettings returns settings usable without any config file.
func DefaultSettings() *SettingsConfig {
	return &SettingsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Cursor: CursorConfig{Width: 1, Height: 1},
		Pet:    PetConfig{SpawnX: 400, SpawnY: 300},
		Sprite: SpriteConfig{
			CellWidth:   32,
			CellHeight:  32,
			BorderWidth: 0,
			Columns:     8,
			Rows:        4,
		},
		Steering: DefaultSteering(),
		Clocks:   ClocksConfig{PointerEvery: 1, AnimationEvery: 2},
		Pointer:  PointerConfig{RelativeScale: 100},
	}
}

// ErrInvalidSettings is wrapped by every Validate failure
var ErrInvalidSettings = errors.New("invalid settings")

// Validate rejects settings the engine cannot run with.
func (c *SettingsConfig) Validate() error {
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"display.screenWidth", c.Display.ScreenWidth, 1},
		{"display.screenHeight", c.Display.ScreenHeight, 1},
		{"display.scale", c.Display.Scale, 1},
		{"display.framerate", c.Display.Framerate, 1},
		{"cursor.width", c.Cursor.Width, 1},
		{"cursor.height", c.Cursor.Height, 1},
		{"sprite.cellWidth", c.Sprite.CellWidth, 1},
		{"sprite.cellHeight", c.Sprite.CellHeight, 1},
		{"sprite.borderWidth", c.Sprite.BorderWidth, 0},
		{"sprite.columns", c.Sprite.Columns, 1},
		{"sprite.rows", c.Sprite.Rows, 1},
		{"steering.speed", c.Steering.Speed, 1},
		{"steering.deadZone", c.Steering.DeadZone, 0},
		{"clocks.pointerEvery", c.Clocks.PointerEvery, 1},
		{"clocks.animationEvery", c.Clocks.AnimationEvery, 1},
		{"pointer.relativeScale", c.Pointer.RelativeScale, 1},
	}

	for _, chk := range checks {
		if chk.value < chk.min {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidSettings, chk.name, chk.min, chk.value)
		}
	}
	return nil
}
