//go:build !windows && !linux

package platform

import "github.com/Flone-dnb/system-wide-key-state/keycode"

// Supported reports whether this platform has a native key state query
const Supported = false

type noopKeyState struct{}

// NewKeyState returns a reader that reports every key as released
func NewKeyState() (KeyState, error) {
	return noopKeyState{}, nil
}

func (noopKeyState) IsPressed(keycode.KeyCode) (bool, error) { return false, nil }

func (noopKeyState) Close() error { return nil }
