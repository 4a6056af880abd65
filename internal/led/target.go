package led

// DefaultDevicePath is the control file exposed by the intel_nuc_led kernel
// module. Both LEDs share the one file; the target is part of the payload.
const DefaultDevicePath = "/proc/acpi/nuc_led"

// Target identifies which physical LED is being controlled.
type Target int

const (
	// Ring is the illuminated ring around the front of the chassis.
	Ring Target = iota
	// Power is the power button LED.
	Power
)

// String returns the wire token for the target as the driver expects it.
func (t Target) String() string {
	switch t {
	case Power:
		return "power"
	default:
		return "ring"
	}
}

// ParseTarget converts a target name into a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "ring":
		return Ring, nil
	case "power":
		return Power, nil
	default:
		return Ring, newError(ErrCodeInvalidValue, "unknown led target: "+s, nil)
	}
}
