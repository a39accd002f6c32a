// Package keycode defines the platform independent key enumeration and the
// canonical human-readable key names.
package keycode

import (
	"errors"
	"fmt"
	"strings"
)

// KeyCode identifies a keyboard key or mouse button
type KeyCode int

const (
	None KeyCode = iota

	Backspace
	Tab
	Enter
	Shift
	Ctrl
	Alt
	CapsLock
	Esc
	Space
	PageUp
	PageDown
	End
	Home
	ArrowLeft
	ArrowUp
	ArrowRight
	ArrowDown
	PrintScreen
	Insert
	Delete

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	LeftMouseButton
	RightMouseButton
	MiddleMouseButton

	numKeys
)

// ErrUnknownKey is returned by Parse for names that match no key
var ErrUnknownKey = errors.New("unknown key")

var names = [numKeys]string{
	None:        "",
	Backspace:   "Back Space",
	Tab:         "Tab",
	Enter:       "Enter",
	Shift:       "Shift",
	Ctrl:        "Ctrl",
	Alt:         "Alt",
	CapsLock:    "Caps Lock",
	Esc:         "Esc",
	Space:       "Space",
	PageUp:      "Page Up",
	PageDown:    "Page Down",
	End:         "End",
	Home:        "Home",
	ArrowLeft:   "Arrow Left",
	ArrowUp:     "Arrow Up",
	ArrowRight:  "Arrow Right",
	ArrowDown:   "Arrow Down",
	PrintScreen: "Print Screen",
	Insert:      "Insert",
	Delete:      "Delete",

	LeftMouseButton:   "Left Mouse Button",
	RightMouseButton:  "Right Mouse Button",
	MiddleMouseButton: "Middle Mouse Button",
}

var (
	byName map[string]KeyCode
	byFold map[string]KeyCode
)

func init() {
	for i := 0; i < 10; i++ {
		names[Key0+KeyCode(i)] = string(rune('0' + i))
	}
	for i := 0; i < 26; i++ {
		names[KeyA+KeyCode(i)] = string(rune('A' + i))
	}
	for i := 0; i < 12; i++ {
		names[F1+KeyCode(i)] = fmt.Sprintf("F%d", i+1)
	}

	byName = make(map[string]KeyCode, numKeys)
	byFold = make(map[string]KeyCode, numKeys)
	for k := KeyCode(1); k < numKeys; k++ {
		byName[names[k]] = k
		byFold[fold(names[k])] = k
	}
}

// fold lowercases a name and drops its spaces, so "page up" and "PageUp" compare equal
func fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// FromName returns the key whose canonical name is exactly name, or None
func FromName(name string) KeyCode {
	return byName[name]
}

// Parse resolves a user supplied key name. Canonical names match first, then
// names compared without case and spaces.
func Parse(name string) (KeyCode, error) {
	name = strings.TrimSpace(name)
	if k, ok := byName[name]; ok {
		return k, nil
	}
	if k, ok := byFold[fold(name)]; ok {
		return k, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Name returns the canonical name of the key. None and invalid values have
// an empty name.
func (k KeyCode) Name() string {
	if !k.Valid() {
		return ""
	}
	return names[k]
}

func (k KeyCode) String() string {
	return k.Name()
}

// Valid reports whether k is one of the supported keys
func (k KeyCode) Valid() bool {
	return k > None && k < numKeys
}

// IsMouseButton reports whether k names a mouse button rather than a keyboard key
func (k KeyCode) IsMouseButton() bool {
	return k >= LeftMouseButton && k <= MiddleMouseButton
}

// All returns every supported key in declaration order
func All() []KeyCode {
	keys := make([]KeyCode, 0, numKeys-1)
	for k := KeyCode(1); k < numKeys; k++ {
		keys = append(keys, k)
	}
	return keys
}
