package led

import "testing"

func TestColor_IsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent should report transparent")
	}
	if White.IsTransparent() {
		t.Error("White should not report transparent")
	}
	// A zero-alpha color with RGB set is still off
	c := Color{R: 255, G: 0, B: 0, A: 0}
	if !c.IsTransparent() {
		t.Error("zero-alpha color should report transparent")
	}
}

func TestColor_Dimmed(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}
	d := c.Dimmed()

	if d.R != 10 || d.G != 20 || d.B != 30 {
		t.Errorf("Dimmed() changed RGB: got %+v", d)
	}
	if d.A != dimAlpha {
		t.Errorf("Dimmed() alpha = %d, want %d", d.A, dimAlpha)
	}
}

func TestColor_HexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"white", "#FFFFFF", White},
		{"red", "#FF0000", Color{R: 255, A: 255}},
		{"sea-green", "#2E8B57", Color{R: 0x2E, G: 0x8B, B: 0x57, A: 255}},
		{"no-hash", "00FF00", Color{G: 255, A: 255}},
		{"lowercase", "#a1b2c3", Color{R: 0xA1, G: 0xB2, B: 0xC3, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "#FFF", "#GGGGGG", "#FFFFFFFF"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q) should fail", input)
		}
	}
}

func TestColor_Hex(t *testing.T) {
	c := Color{R: 0x2E, G: 0x8B, B: 0x57, A: 255}
	if got := c.Hex(); got != "#2E8B57" {
		t.Errorf("Hex() = %q, want %q", got, "#2E8B57")
	}
}
