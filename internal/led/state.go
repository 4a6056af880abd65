package led

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// State is the full set of attributes for one LED. The driver only accepts
// whole-state writes, so all three fields must be valid before encoding.
type State struct {
	Brightness int
	Color      Color
	Effect     Effect
}

// hexCode extracts the parenthesized code from status values such as
// "Cyan (0x01)".
var hexCode = regexp.MustCompile(`\((.+)\)`)

// parseStatus decodes the driver's multi-line status output into the state of
// the given target. Lines belonging to the other target are ignored.
//
// The expected shape, per line: "Ring LED Brightness: 80%",
// "Ring LED Blink/Fade: Always On (0x04)", "Ring LED Color: Cyan (0x01)".
func parseStatus(t Target, raw string) (State, error) {
	var (
		state          State
		haveBrightness bool
		haveEffect     bool
		haveColor      bool
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "\x00"))
		if line == "" {
			continue
		}

		desc, value, found := strings.Cut(line, ":")
		if !found {
			return State{}, newError(ErrCodeInvalidFormat, "malformed status line: "+line, nil)
		}
		if !strings.HasPrefix(strings.ToLower(desc), t.String()) {
			continue
		}

		switch {
		case strings.Contains(desc, "Brightness"):
			b, err := parseBrightness(value)
			if err != nil {
				return State{}, err
			}
			state.Brightness = b
			haveBrightness = true

		case strings.Contains(desc, "Blink"):
			code, err := parseCode(value)
			if err != nil {
				return State{}, err
			}
			effect, ok := effectByCode(code)
			if !ok {
				return State{}, newError(ErrCodeInvalidValue, fmt.Sprintf("unknown effect code 0x%02x", code), nil)
			}
			state.Effect = effect
			haveEffect = true

		case strings.Contains(desc, "Color"):
			code, err := parseCode(value)
			if err != nil {
				return State{}, err
			}
			color, ok := t.colorByCode(code)
			if !ok {
				return State{}, newError(ErrCodeInvalidValue, fmt.Sprintf("unknown %s color code 0x%02x", t, code), nil)
			}
			state.Color = color
			haveColor = true
		}
	}

	if !haveBrightness || !haveEffect || !haveColor {
		return State{}, newError(ErrCodeInvalidFormat, "status output missing attributes for "+t.String()+" led", nil)
	}
	return state, nil
}

// parseBrightness reads the "80%" form of the brightness status value.
func parseBrightness(value string) (int, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "%")
	b, err := strconv.Atoi(value)
	if err != nil {
		return 0, newError(ErrCodeInvalidFormat, "malformed brightness value: "+value, err)
	}
	if b < 0 || b > 100 {
		return 0, newError(ErrCodeInvalidValue, fmt.Sprintf("brightness %d outside [0,100]", b), nil)
	}
	return b, nil
}

// parseCode reads the "(0xNN)" hex code out of a status value.
func parseCode(value string) (uint8, error) {
	m := hexCode.FindStringSubmatch(value)
	if m == nil {
		return 0, newError(ErrCodeInvalidFormat, "status value missing hex code: "+strings.TrimSpace(value), nil)
	}
	code, err := strconv.ParseUint(m[1], 0, 8)
	if err != nil {
		return 0, newError(ErrCodeInvalidFormat, "malformed hex code: "+m[1], err)
	}
	return uint8(code), nil
}

// encodeState renders the single control line the driver accepts:
// "<target>,<brightness>,<effect>,<color>". It is total for states that
// passed setter validation.
func encodeState(t Target, s State) string {
	return fmt.Sprintf("%s,%d,%s,%s", t, s.Brightness, s.Effect, s.Color)
}
