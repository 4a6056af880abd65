package led

import (
	"errors"
	"testing"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"ring", Ring, false},
		{"power", Power, false},
		{"Ring", Ring, true},
		{"hdd", Ring, true},
		{"", Ring, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("ParseTarget(%q) error = %v, want INVALID_VALUE", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTarget(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSupportedColors(t *testing.T) {
	ring := Ring.SupportedColors()
	if len(ring) != 8 {
		t.Errorf("ring supports %d colors, want 8", len(ring))
	}
	if ring[0] != ColorOff || ring[1] != ColorCyan || ring[7] != ColorWhite {
		t.Errorf("ring colors not in code order: %v", ring)
	}

	power := Power.SupportedColors()
	want := []Color{ColorOff, ColorBlue, ColorAmber}
	if len(power) != len(want) {
		t.Fatalf("power supports %d colors, want %d", len(power), len(want))
	}
	for i, c := range want {
		if power[i] != c {
			t.Errorf("power color[%d] = %s, want %s", i, power[i], c)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		target  Target
		in      string
		wantErr bool
	}{
		{Ring, "cyan", false},
		{Ring, "white", false},
		{Ring, "off", false},
		{Ring, "amber", true}, // ring hardware has no amber
		{Ring, "mauve", true},
		{Power, "amber", false},
		{Power, "blue", false},
		{Power, "cyan", true}, // power LED is bi-color only
	}

	for _, tt := range tests {
		t.Run(tt.target.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.target, tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("ParseColor error = %v, want INVALID_VALUE", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor error: %v", err)
			}
			if got != Color(tt.in) {
				t.Errorf("ParseColor = %s, want %s", got, tt.in)
			}
		})
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range Effects() {
		got, err := ParseEffect(string(e))
		if err != nil {
			t.Errorf("ParseEffect(%q) error: %v", e, err)
		}
		if got != e {
			t.Errorf("ParseEffect(%q) = %s", e, got)
		}
	}

	for _, bad := range []string{"", "solid", "blink", "BLINK_FAST"} {
		if _, err := ParseEffect(bad); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ParseEffect(%q) error = %v, want INVALID_VALUE", bad, err)
		}
	}
}
