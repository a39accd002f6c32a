package platform

// asyncKeyDown reports whether a GetAsyncKeyState result has the
// most significant bit set, meaning the key is down right now.
func asyncKeyDown(r uintptr) bool {
	return r&0x8000 != 0
}

// keymapBitSet reads the bit for keycode kc from a QueryKeymap vector:
// byte kc>>3, bit kc&7.
func keymapBitSet(keys []byte, kc byte) bool {
	i := int(kc >> 3)
	if i >= len(keys) {
		return false
	}
	return keys[i]&(1<<(kc&7)) != 0
}

// keycodeForKeysym returns the first keycode whose row of a GetKeyboardMapping
// table contains sym. Rows have perKeycode entries and start at minKeycode.
func keycodeForKeysym(keysyms []uint32, perKeycode int, minKeycode byte, sym uint32) (byte, bool) {
	if perKeycode <= 0 || sym == 0 {
		return 0, false
	}
	for i, s := range keysyms {
		if s != sym {
			continue
		}
		kc := int(minKeycode) + i/perKeycode
		if kc > 255 {
			return 0, false
		}
		return byte(kc), true
	}
	return 0, false
}

// buttonMask returns the QueryPointer state bit for a pointer button (1-5)
func buttonMask(button uint32) uint16 {
	if button < 1 || button > 5 {
		return 0
	}
	return 1 << (7 + button)
}
