package led

// Effect is a blink/fade pattern as named by the driver.
type Effect string

const (
	EffectBlinkFast   Effect = "blink_fast"
	EffectBlinkMedium Effect = "blink_medium"
	EffectBlinkSlow   Effect = "blink_slow"
	EffectFadeFast    Effect = "fade_fast"
	EffectFadeMedium  Effect = "fade_medium"
	EffectFadeSlow    Effect = "fade_slow"
	// EffectSolid disables blinking. The driver calls this "none".
	EffectSolid Effect = "none"
)

// effectCodes maps the hex codes from the driver's status output to effects.
// Codes 0x00 and 0x04 both mean always-on; 0x00 is what the power LED
// reports.
var effectCodes = map[uint8]Effect{
	0x00: EffectSolid,
	0x01: EffectBlinkFast,
	0x02: EffectBlinkSlow,
	0x03: EffectFadeFast,
	0x04: EffectSolid,
	0x05: EffectBlinkMedium,
	0x06: EffectFadeSlow,
	0x07: EffectFadeMedium,
}

// Effects returns all selectable effects.
func Effects() []Effect {
	return []Effect{
		EffectBlinkFast,
		EffectBlinkMedium,
		EffectBlinkSlow,
		EffectFadeFast,
		EffectFadeMedium,
		EffectFadeSlow,
		EffectSolid,
	}
}

// ParseEffect converts an effect name into an Effect.
func ParseEffect(s string) (Effect, error) {
	for _, e := range Effects() {
		if Effect(s) == e {
			return e, nil
		}
	}
	return "", newError(ErrCodeInvalidValue, "unknown effect: "+s, nil)
}

func effectByCode(code uint8) (Effect, bool) {
	e, ok := effectCodes[code]
	return e, ok
}
