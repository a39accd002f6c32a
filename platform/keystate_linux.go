//go:build linux

package platform

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
)

// Supported reports whether this platform has a native key state query
const Supported = true

// X11KeyState implements KeyState over one X server connection
type X11KeyState struct {
	mu         sync.Mutex
	conn       *xgb.Conn
	root       xproto.Window
	minKeycode byte
	perKeycode int
	keysyms    []uint32
}

// NewKeyState connects to the X server named by $DISPLAY and caches its
// keyboard mapping
func NewKeyState() (KeyState, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to get keyboard mapping: %w", err)
	}

	keysyms := make([]uint32, len(mapping.Keysyms))
	for i, ks := range mapping.Keysyms {
		keysyms[i] = uint32(ks)
	}

	return &X11KeyState{
		conn:       conn,
		root:       screen.Root,
		minKeycode: byte(setup.MinKeycode),
		perKeycode: int(mapping.KeysymsPerKeycode),
		keysyms:    keysyms,
	}, nil
}

// IsPressed reports whether k is down at the time of the call
func (s *X11KeyState) IsPressed(k keycode.KeyCode) (bool, error) {
	code, ok := NativeCode(k)
	if !ok {
		return false, unmapped(k)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return false, ErrClosed
	}

	if k.IsMouseButton() {
		pointer, err := xproto.QueryPointer(s.conn, s.root).Reply()
		if err != nil {
			return false, fmt.Errorf("failed to query pointer: %w", err)
		}
		return pointer.Mask&buttonMask(code) != 0, nil
	}

	kc, ok := keycodeForKeysym(s.keysyms, s.perKeycode, s.minKeycode, code)
	if !ok {
		return false, fmt.Errorf("%w: %s (0x%04x)", ErrNoKeycode, k, code)
	}

	keymap, err := xproto.QueryKeymap(s.conn).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to query keymap: %w", err)
	}
	return keymapBitSet(keymap.Keys, kc), nil
}

// Close closes the X connection
func (s *X11KeyState) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	return nil
}
