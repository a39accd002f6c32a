package platform

import (
	"fmt"
	"time"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
)

// Reading is the state of one key at the moment it was queried
type Reading struct {
	Key     keycode.KeyCode
	Pressed bool
	Time    time.Time
}

// Snapshot queries each key once, in order. It stops at the first failure.
func Snapshot(s KeyState, keys []keycode.KeyCode) ([]Reading, error) {
	readings := make([]Reading, 0, len(keys))
	for _, k := range keys {
		pressed, err := s.IsPressed(k)
		if err != nil {
			return readings, fmt.Errorf("failed to query %q: %w", k.Name(), err)
		}
		readings = append(readings, Reading{
			Key:     k,
			Pressed: pressed,
			Time:    time.Now(),
		})
	}
	return readings, nil
}
