package config

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
)

const (
	prefLineWidth = "lineWidth"
	prefInkColor  = "inkColor"
)

// Config holds the window and drawing defaults.
type Config struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32
	Background   color.Color
	Ink          color.Color
	LineWidth    float32
	ChatReply    string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:        "Whiteboard App",
		WindowWidth:  900,
		WindowHeight: 600,
		Background:   color.White,
		Ink:          color.Black,
		LineWidth:    5,
		ChatReply:    "This is a response from the AI.",
	}
}

// Load returns the defaults with the ink color and line width the user
// picked last time, if any were remembered.
func Load(p fyne.Preferences) Config {
	cfg := Default()
	if p == nil {
		return cfg
	}
	if w := p.FloatWithFallback(prefLineWidth, float64(cfg.LineWidth)); w > 0 {
		cfg.LineWidth = float32(w)
	}
	if s := p.String(prefInkColor); s != "" {
		c, err := ParseHex(s)
		if err != nil {
			log.Printf("[CONFIG] Ignoring remembered ink color %q: %v", s, err)
		} else {
			cfg.Ink = c
		}
	}
	return cfg
}

// Remember stores the current ink color and line width.
func Remember(p fyne.Preferences, ink color.Color, width float32) {
	if p == nil {
		return
	}
	p.SetFloat(prefLineWidth, float64(width))
	if ink != nil {
		p.SetString(prefInkColor, Hex(ink))
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// ParseHex reads a #rrggbb color.
func ParseHex(s string) (color.Color, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("bad color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
