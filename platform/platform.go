// Package platform maps keys to native input codes and queries their
// pressed state from the host input subsystem.
package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
)

var (
	// ErrUnmapped is returned for keys without a native code on this platform
	ErrUnmapped = errors.New("key has no native code")
	// ErrNoKeycode is returned when the keyboard mapping has no keycode producing the keysym
	ErrNoKeycode = errors.New("no keycode for keysym")
	// ErrClosed is returned by a KeyState used after Close
	ErrClosed = errors.New("key state closed")
)

// KeyState queries the current state of keys system wide
type KeyState interface {
	IsPressed(k keycode.KeyCode) (bool, error)
	Close() error
}

// NativeCode returns the platform code for k: a virtual-key code on Windows,
// a keysym (or pointer button number for mouse buttons) on Linux.
func NativeCode(k keycode.KeyCode) (uint32, bool) {
	code, ok := nativeCodes[k]
	return code, ok
}

func unmapped(k keycode.KeyCode) error {
	if k == keycode.None {
		return fmt.Errorf("%w: none", ErrUnmapped)
	}
	return fmt.Errorf("%w: %s", ErrUnmapped, k)
}

// IsPressed opens a KeyState, queries k once and closes it again.
// Failures are logged and reported as released.
func IsPressed(k keycode.KeyCode) bool {
	s, err := NewKeyState()
	if err != nil {
		slog.Debug("Key state unavailable", "error", err)
		return false
	}
	defer s.Close()

	pressed, err := s.IsPressed(k)
	if err != nil {
		slog.Debug("Key state query failed", "key", k.Name(), "error", err)
		return false
	}
	return pressed
}
