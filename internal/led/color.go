package led

import "sort"

// Color is an LED color as named by the driver.
type Color string

const (
	ColorOff    Color = "off"
	ColorAmber  Color = "amber"
	ColorCyan   Color = "cyan"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorWhite  Color = "white"
)

// Color tables per target, keyed by the hex code the driver reports in its
// status output. The power LED is a plain bi-color part and supports fewer
// colors than the RGB ring.
var (
	ringColors = map[uint8]Color{
		0x00: ColorOff,
		0x01: ColorCyan,
		0x02: ColorPink,
		0x03: ColorYellow,
		0x04: ColorBlue,
		0x05: ColorRed,
		0x06: ColorGreen,
		0x07: ColorWhite,
	}
	powerColors = map[uint8]Color{
		0x00: ColorOff,
		0x01: ColorBlue,
		0x02: ColorAmber,
	}
)

func (t Target) colorTable() map[uint8]Color {
	if t == Power {
		return powerColors
	}
	return ringColors
}

// SupportedColors returns the colors the target's hardware accepts, in the
// driver's code order.
func (t Target) SupportedColors() []Color {
	table := t.colorTable()
	codes := make([]int, 0, len(table))
	for code := range table {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)

	colors := make([]Color, 0, len(codes))
	for _, code := range codes {
		colors = append(colors, table[uint8(code)])
	}
	return colors
}

// Supports reports whether the target's hardware accepts the color.
func (t Target) Supports(c Color) bool {
	for _, known := range t.colorTable() {
		if known == c {
			return true
		}
	}
	return false
}

// ParseColor converts a color name into a Color, validating it against the
// target's supported set.
func ParseColor(t Target, s string) (Color, error) {
	c := Color(s)
	if !t.Supports(c) {
		return "", newError(ErrCodeInvalidValue, "unsupported color for "+t.String()+" led: "+s, nil)
	}
	return c, nil
}

func (t Target) colorByCode(code uint8) (Color, bool) {
	c, ok := t.colorTable()[code]
	return c, ok
}
