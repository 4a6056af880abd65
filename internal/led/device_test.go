package led

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadRawMissingDevice(t *testing.T) {
	h := NewHandle(Ring, filepath.Join(t.TempDir(), "nuc_led"))
	_, err := h.ReadRaw()
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("ReadRaw() error = %v, want DEVICE_UNAVAILABLE", err)
	}
}

func TestWriteRawMissingDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuc_led")
	h := NewHandle(Ring, path)

	err := h.WriteRaw("ring,80,none,cyan")
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("WriteRaw() error = %v, want DEVICE_UNAVAILABLE", err)
	}

	// The write must not have created a stray regular file.
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("WriteRaw() created the control file")
	}
}

func TestWriteRawTerminatesLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuc_led")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHandle(Ring, path)
	if err := h.WriteRaw("ring,80,none,cyan"); err != nil {
		t.Fatalf("WriteRaw() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ring,80,none,cyan\n" {
		t.Errorf("control file = %q, want newline-terminated line", data)
	}
}

func TestWriteRawPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file modes do not restrict root")
	}

	path := filepath.Join(t.TempDir(), "nuc_led")
	if err := os.WriteFile(path, []byte(""), 0o444); err != nil {
		t.Fatal(err)
	}

	h := NewHandle(Ring, path)
	err := h.WriteRaw("ring,80,none,cyan")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("WriteRaw() error = %v, want PERMISSION_DENIED", err)
	}
}

func TestNewHandleDefaultPath(t *testing.T) {
	h := NewHandle(Power, "")
	if h.Path() != DefaultDevicePath {
		t.Errorf("Path() = %q, want %q", h.Path(), DefaultDevicePath)
	}
	if h.Target() != Power {
		t.Errorf("Target() = %v, want Power", h.Target())
	}
}
