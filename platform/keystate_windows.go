//go:build windows

package platform

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/windows"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
)

// Supported reports whether this platform has a native key state query
const Supported = true

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// WindowsKeyState implements KeyState with GetAsyncKeyState
type WindowsKeyState struct {
	closed atomic.Bool
}

// NewKeyState checks that user32 exports GetAsyncKeyState and returns a reader
func NewKeyState() (KeyState, error) {
	if err := getAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("GetAsyncKeyState unavailable: %w", err)
	}
	return &WindowsKeyState{}, nil
}

// IsPressed reports whether k is down at the time of the call
func (s *WindowsKeyState) IsPressed(k keycode.KeyCode) (bool, error) {
	if s.closed.Load() {
		return false, ErrClosed
	}
	vk, ok := NativeCode(k)
	if !ok {
		return false, unmapped(k)
	}

	r, _, _ := getAsyncKeyState.Call(uintptr(vk))
	return asyncKeyDown(r), nil
}

// Close marks the reader closed. The DLL stays loaded for the process.
func (s *WindowsKeyState) Close() error {
	s.closed.Store(true)
	return nil
}
