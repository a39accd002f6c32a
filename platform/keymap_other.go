//go:build !windows && !linux

package platform

import "github.com/Flone-dnb/system-wide-key-state/keycode"

var nativeCodes = map[keycode.KeyCode]uint32{}
