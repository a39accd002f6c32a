// Package keystate queries whether a keyboard key or mouse button is held
// down right now, system wide, and converts between key names and codes.
//
//	if keystate.IsKeyPressed(keystate.KeyEsc) {
//		// Escape is held
//	}
//
// Windows uses GetAsyncKeyState, Linux queries the X server named by
// $DISPLAY. Other platforms report every key as released.
package keystate

import (
	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
)

// KeyCode identifies a keyboard key or mouse button
type KeyCode = keycode.KeyCode

const (
	KeyNone        = keycode.None
	KeyBackspace   = keycode.Backspace
	KeyTab         = keycode.Tab
	KeyEnter       = keycode.Enter
	KeyShift       = keycode.Shift
	KeyCtrl        = keycode.Ctrl
	KeyAlt         = keycode.Alt
	KeyCapsLock    = keycode.CapsLock
	KeyEsc         = keycode.Esc
	KeySpace       = keycode.Space
	KeyPageUp      = keycode.PageUp
	KeyPageDown    = keycode.PageDown
	KeyEnd         = keycode.End
	KeyHome        = keycode.Home
	KeyArrowLeft   = keycode.ArrowLeft
	KeyArrowUp     = keycode.ArrowUp
	KeyArrowRight  = keycode.ArrowRight
	KeyArrowDown   = keycode.ArrowDown
	KeyPrintScreen = keycode.PrintScreen
	KeyInsert      = keycode.Insert
	KeyDelete      = keycode.Delete

	Key0 = keycode.Key0
	Key1 = keycode.Key1
	Key2 = keycode.Key2
	Key3 = keycode.Key3
	Key4 = keycode.Key4
	Key5 = keycode.Key5
	Key6 = keycode.Key6
	Key7 = keycode.Key7
	Key8 = keycode.Key8
	Key9 = keycode.Key9

	KeyA = keycode.KeyA
	KeyB = keycode.KeyB
	KeyC = keycode.KeyC
	KeyD = keycode.KeyD
	KeyE = keycode.KeyE
	KeyF = keycode.KeyF
	KeyG = keycode.KeyG
	KeyH = keycode.KeyH
	KeyI = keycode.KeyI
	KeyJ = keycode.KeyJ
	KeyK = keycode.KeyK
	KeyL = keycode.KeyL
	KeyM = keycode.KeyM
	KeyN = keycode.KeyN
	KeyO = keycode.KeyO
	KeyP = keycode.KeyP
	KeyQ = keycode.KeyQ
	KeyR = keycode.KeyR
	KeyS = keycode.KeyS
	KeyT = keycode.KeyT
	KeyU = keycode.KeyU
	KeyV = keycode.KeyV
	KeyW = keycode.KeyW
	KeyX = keycode.KeyX
	KeyY = keycode.KeyY
	KeyZ = keycode.KeyZ

	KeyF1  = keycode.F1
	KeyF2  = keycode.F2
	KeyF3  = keycode.F3
	KeyF4  = keycode.F4
	KeyF5  = keycode.F5
	KeyF6  = keycode.F6
	KeyF7  = keycode.F7
	KeyF8  = keycode.F8
	KeyF9  = keycode.F9
	KeyF10 = keycode.F10
	KeyF11 = keycode.F11
	KeyF12 = keycode.F12

	MouseLeft   = keycode.LeftMouseButton
	MouseRight  = keycode.RightMouseButton
	MouseMiddle = keycode.MiddleMouseButton
)

// IsKeyPressed reports whether key is held down at the time of the call.
// It returns false when the platform query is unavailable.
func IsKeyPressed(key KeyCode) bool {
	return platform.IsPressed(key)
}

// StringToKey returns the key with the given name, or KeyNone if there is none.
//
//	StringToKey("T")          // KeyT
//	StringToKey("Page Up")    // KeyPageUp
//	StringToKey("bogus text") // KeyNone
func StringToKey(name string) KeyCode {
	return keycode.FromName(name)
}

// GetKeyName returns the name of key, the inverse of StringToKey
func GetKeyName(key KeyCode) string {
	return key.Name()
}
