//go:build windows

package platform

import "github.com/Flone-dnb/system-wide-key-state/keycode"

// Windows virtual-key codes
var nativeCodes = map[keycode.KeyCode]uint32{
	keycode.LeftMouseButton:   0x01, // VK_LBUTTON
	keycode.RightMouseButton:  0x02, // VK_RBUTTON
	keycode.MiddleMouseButton: 0x04, // VK_MBUTTON

	keycode.Backspace:   0x08,
	keycode.Tab:         0x09,
	keycode.Enter:       0x0D,
	keycode.Shift:       0x10,
	keycode.Ctrl:        0x11,
	keycode.Alt:         0x12,
	keycode.CapsLock:    0x14,
	keycode.Esc:         0x1B,
	keycode.Space:       0x20,
	keycode.PageUp:      0x21,
	keycode.PageDown:    0x22,
	keycode.End:         0x23,
	keycode.Home:        0x24,
	keycode.ArrowLeft:   0x25,
	keycode.ArrowUp:     0x26,
	keycode.ArrowRight:  0x27,
	keycode.ArrowDown:   0x28,
	keycode.PrintScreen: 0x2C,
	keycode.Insert:      0x2D,
	keycode.Delete:      0x2E,

	keycode.Key0: 0x30, keycode.Key1: 0x31, keycode.Key2: 0x32, keycode.Key3: 0x33, keycode.Key4: 0x34,
	keycode.Key5: 0x35, keycode.Key6: 0x36, keycode.Key7: 0x37, keycode.Key8: 0x38, keycode.Key9: 0x39,

	keycode.KeyA: 0x41, keycode.KeyB: 0x42, keycode.KeyC: 0x43, keycode.KeyD: 0x44, keycode.KeyE: 0x45,
	keycode.KeyF: 0x46, keycode.KeyG: 0x47, keycode.KeyH: 0x48, keycode.KeyI: 0x49, keycode.KeyJ: 0x4A,
	keycode.KeyK: 0x4B, keycode.KeyL: 0x4C, keycode.KeyM: 0x4D, keycode.KeyN: 0x4E, keycode.KeyO: 0x4F,
	keycode.KeyP: 0x50, keycode.KeyQ: 0x51, keycode.KeyR: 0x52, keycode.KeyS: 0x53, keycode.KeyT: 0x54,
	keycode.KeyU: 0x55, keycode.KeyV: 0x56, keycode.KeyW: 0x57, keycode.KeyX: 0x58, keycode.KeyY: 0x59,
	keycode.KeyZ: 0x5A,

	keycode.F1: 0x70, keycode.F2: 0x71, keycode.F3: 0x72, keycode.F4: 0x73,
	keycode.F5: 0x74, keycode.F6: 0x75, keycode.F7: 0x76, keycode.F8: 0x77,
	keycode.F9: 0x78, keycode.F10: 0x79, keycode.F11: 0x7A, keycode.F12: 0x7B,
}
