package config

import (
	_ "embed"
)

//go:embed defaults/snake3d.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: Timing{
			InitialInterval: 0.7,
			IntervalStep:    0.1,
		},
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Snake",
			FPS:    60,
		},
		Camera: Camera{
			Position: [3]float32{-10, 10, -5},
			Up:       [3]float32{0, 1, 0},
			Fovy:     45,
		},
		Colors: Colors{
			Background: RGBA{R: 200, G: 200, B: 200, A: 255},
			Grid:       RGBA{R: 0, G: 0, B: 0, A: 255},
			Body:       RGBA{R: 0, G: 204, B: 0, A: 255},
			Head:       RGBA{R: 0, G: 255, B: 0, A: 255},
			Fruit:      RGBA{R: 255, G: 0, B: 0, A: 255},
			Text:       RGBA{R: 255, G: 255, B: 255, A: 255},
			GameOver:   RGBA{R: 255, G: 0, B: 0, A: 255},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
