// Package ui provides the graphical user interface for LED Board.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/atran/led-board/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	GlowColor   color.RGBA
	ShowGlow    bool
}

// DefaultLitIconConfig returns the default config for the lit state.
func DefaultLitIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{46, 139, 87, 255},   // Sea green
		BorderColor: color.RGBA{38, 115, 73, 255},   // Darker green
		GlowColor:   color.RGBA{200, 230, 201, 255}, // Light green
		ShowGlow:    true,
	}
}

// DefaultDarkIconConfig returns the default config for the all-off state.
func DefaultDarkIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor: color.RGBA{158, 158, 158, 255}, // Gray
		GlowColor:   color.RGBA{189, 189, 189, 255}, // Light gray
		ShowGlow:    false,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawLED(img)

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawLED draws a round LED lens on the image.
func (g *IconGenerator) drawLED(img *image.RGBA) {
	size := g.config.Size
	center := float64(size) / 2
	radius := center - 2

	inCircle := func(x, y, r float64) bool {
		dx := x - center
		dy := y - center
		return dx*dx+dy*dy <= r*r
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5

			if !inCircle(fx, fy, radius) {
				continue
			}

			if !inCircle(fx, fy, radius-1.2) {
				img.Set(x, y, g.config.BorderColor)
				continue
			}

			// Specular highlight in the upper-left quadrant of a lit lens
			if g.config.ShowGlow && inCircle(fx+radius*0.35, fy+radius*0.35, radius*0.3) {
				img.Set(x, y, g.config.GlowColor)
				continue
			}

			img.Set(x, y, g.config.FillColor)
		}
	}
}

// GenerateLitIcon generates the icon shown while at least one LED is on.
func GenerateLitIcon() []byte {
	gen := NewIconGenerator(DefaultLitIconConfig())
	return gen.Generate()
}

// GenerateDarkIcon generates the icon shown while the board is dark.
func GenerateDarkIcon() []byte {
	gen := NewIconGenerator(DefaultDarkIconConfig())
	return gen.Generate()
}
