package config

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestLoadDefaults(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := Load(a.Preferences())
	if cfg.LineWidth != 5 {
		t.Errorf("LineWidth = %v, want 5", cfg.LineWidth)
	}
	if cfg.Ink != color.Black {
		t.Errorf("Ink = %v, want black", cfg.Ink)
	}
	if cfg.ChatReply != "This is a response from the AI." {
		t.Errorf("unexpected chat reply %q", cfg.ChatReply)
	}
}

func TestLoadNilPreferences(t *testing.T) {
	if cfg := Load(nil); cfg.LineWidth != Default().LineWidth {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestRememberRoundTrip(t *testing.T) {
	a := test.NewTempApp(t)
	p := a.Preferences()
	Remember(p, color.NRGBA{R: 0x12, G: 0xab, B: 0xef, A: 255}, 9)

	cfg := Load(p)
	if cfg.LineWidth != 9 {
		t.Errorf("LineWidth = %v, want 9", cfg.LineWidth)
	}
	if got := Hex(cfg.Ink); got != "#12abef" {
		t.Errorf("Ink = %s, want #12abef", got)
	}
}

func TestLoadIgnoresBadColor(t *testing.T) {
	a := test.NewTempApp(t)
	a.Preferences().SetString(prefInkColor, "chartreuse")
	if cfg := Load(a.Preferences()); cfg.Ink != color.Black {
		t.Errorf("bad remembered color should fall back to black, got %v", cfg.Ink)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"#000000", false},
		{"#ff8000", false},
		{"ff8000", true},
		{"#ff80", true},
		{"#gg0000", true},
	}
	for _, tt := range tests {
		_, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
