//go:build linux

package platform

import "github.com/Flone-dnb/system-wide-key-state/keycode"

// X11 keysyms, see /usr/include/X11/keysymdef.h. Mouse buttons carry the
// core protocol pointer button number instead.
var nativeCodes = map[keycode.KeyCode]uint32{
	keycode.LeftMouseButton:   1,
	keycode.MiddleMouseButton: 2,
	keycode.RightMouseButton:  3,

	keycode.Backspace:   0xff08, // XK_BackSpace
	keycode.Tab:         0xff09, // XK_Tab
	keycode.Enter:       0xff0d, // XK_Return
	keycode.Shift:       0xffe1, // XK_Shift_L
	keycode.Ctrl:        0xffe3, // XK_Control_L
	keycode.Alt:         0xffe9, // XK_Alt_L
	keycode.CapsLock:    0xffe5, // XK_Caps_Lock
	keycode.Esc:         0xff1b, // XK_Escape
	keycode.Space:       0x0020, // XK_space
	keycode.PageUp:      0xff55, // XK_Prior
	keycode.PageDown:    0xff56, // XK_Next
	keycode.End:         0xff57, // XK_End
	keycode.Home:        0xff50, // XK_Home
	keycode.ArrowLeft:   0xff51, // XK_Left
	keycode.ArrowUp:     0xff52, // XK_Up
	keycode.ArrowRight:  0xff53, // XK_Right
	keycode.ArrowDown:   0xff54, // XK_Down
	keycode.PrintScreen: 0xff61, // XK_Print
	keycode.Insert:      0xff63, // XK_Insert
	keycode.Delete:      0xffff, // XK_Delete

	keycode.Key0: 0x30, keycode.Key1: 0x31, keycode.Key2: 0x32, keycode.Key3: 0x33, keycode.Key4: 0x34,
	keycode.Key5: 0x35, keycode.Key6: 0x36, keycode.Key7: 0x37, keycode.Key8: 0x38, keycode.Key9: 0x39,

	// lowercase keysyms sit in the first column of the keyboard mapping
	keycode.KeyA: 0x61, keycode.KeyB: 0x62, keycode.KeyC: 0x63, keycode.KeyD: 0x64, keycode.KeyE: 0x65,
	keycode.KeyF: 0x66, keycode.KeyG: 0x67, keycode.KeyH: 0x68, keycode.KeyI: 0x69, keycode.KeyJ: 0x6a,
	keycode.KeyK: 0x6b, keycode.KeyL: 0x6c, keycode.KeyM: 0x6d, keycode.KeyN: 0x6e, keycode.KeyO: 0x6f,
	keycode.KeyP: 0x70, keycode.KeyQ: 0x71, keycode.KeyR: 0x72, keycode.KeyS: 0x73, keycode.KeyT: 0x74,
	keycode.KeyU: 0x75, keycode.KeyV: 0x76, keycode.KeyW: 0x77, keycode.KeyX: 0x78, keycode.KeyY: 0x79,
	keycode.KeyZ: 0x7a,

	keycode.F1: 0xffbe, keycode.F2: 0xffbf, keycode.F3: 0xffc0, keycode.F4: 0xffc1,
	keycode.F5: 0xffc2, keycode.F6: 0xffc3, keycode.F7: 0xffc4, keycode.F8: 0xffc5,
	keycode.F9: 0xffc6, keycode.F10: 0xffc7, keycode.F11: 0xffc8, keycode.F12: 0xffc9,
}
