package led

import (
	"context"
	"fmt"
	"time"
)

// Notification describes a temporary state change. Nil fields keep the
// current value.
type Notification struct {
	Brightness *int
	Color      *Color
	Effect     *Effect
}

// Notify applies the notification state to the target LED for the given
// duration, then restores the state that was active before the call.
//
// The wait ends early when ctx is cancelled; the restore write runs on that
// path too, so an interrupted notify never strands the hardware in the
// temporary state. A failed restore is reported distinctly from a failed
// apply: the returned error wraps the restore failure, and the LED is left
// showing the notification state.
func Notify(ctx context.Context, t Target, n Notification, duration time.Duration, opts ...Option) error {
	s, err := Open(t, opts...)
	if err != nil {
		return err
	}

	// Capture the restore line before staging any edits.
	saved := encodeState(t, s.committed)
	s.logger.Debug("Starting notify", "target", t.String(), "restore_line", saved, "duration", duration)

	if n.Brightness != nil {
		if err := s.SetBrightness(*n.Brightness); err != nil {
			return err
		}
	}
	if n.Color != nil {
		if err := s.SetColor(*n.Color); err != nil {
			return err
		}
	}
	if n.Effect != nil {
		if err := s.SetEffect(*n.Effect); err != nil {
			return err
		}
	}
	if err := s.Commit(); err != nil {
		return err
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	var waitErr error
	select {
	case <-timer.C:
	case <-ctx.Done():
		waitErr = ctx.Err()
	}

	if err := s.handle.WriteRaw(saved); err != nil {
		return fmt.Errorf("restoring previous led state: %w", err)
	}
	return waitErr
}
