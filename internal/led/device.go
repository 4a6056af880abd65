package led

import (
	"os"
	"strings"
)

// Handle is a device handle for one LED target's control file.
//
// A missing control file means the intel_nuc_led module is not loaded or the
// hardware is unsupported; that condition is permanent for the process
// lifetime, so nothing here retries.
type Handle struct {
	target Target
	path   string
}

// NewHandle returns a handle for the target. An empty path selects
// DefaultDevicePath.
func NewHandle(t Target, path string) *Handle {
	if path == "" {
		path = DefaultDevicePath
	}
	return &Handle{target: t, path: path}
}

// Target returns the LED this handle controls.
func (h *Handle) Target() Target { return h.target }

// Path returns the control file path.
func (h *Handle) Path() string { return h.path }

// ReadRaw returns the driver's status output verbatim.
func (h *Handle) ReadRaw() (string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return "", newError(ErrCodeDeviceUnavailable, "reading "+h.path, err)
	}
	return string(data), nil
}

// WriteRaw writes one control line to the device. The file is opened without
// O_CREATE so a missing driver surfaces as DEVICE_UNAVAILABLE rather than a
// stray regular file.
func (h *Handle) WriteRaw(line string) error {
	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		if os.IsPermission(err) {
			return newError(ErrCodePermissionDenied, "writing "+h.path, err)
		}
		return newError(ErrCodeDeviceUnavailable, "writing "+h.path, err)
	}
	defer f.Close()

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := f.WriteString(line); err != nil {
		if os.IsPermission(err) {
			return newError(ErrCodePermissionDenied, "writing "+h.path, err)
		}
		return newError(ErrCodeDeviceUnavailable, "writing "+h.path, err)
	}
	return nil
}
