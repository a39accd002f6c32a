package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
	"github.com/Flone-dnb/system-wide-key-state/storage"
)

type fakeKeyState struct {
	mu      sync.Mutex
	pressed map[keycode.KeyCode]bool
	queries int
}

func (f *fakeKeyState) IsPressed(k keycode.KeyCode) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if k == keycode.PrintScreen {
		return false, platform.ErrNoKeycode
	}
	return f.pressed[k], nil
}

func (f *fakeKeyState) Close() error { return nil }

func newTestServer(t *testing.T, withDB bool) (*httptest.Server, *fakeKeyState, *storage.DB) {
	t.Helper()

	state := &fakeKeyState{pressed: map[keycode.KeyCode]bool{keycode.Esc: true}}

	var db *storage.DB
	if withDB {
		var err error
		db, err = storage.Open(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to open database: %v", err)
		}
		t.Cleanup(func() { db.Close() })
	}

	ts := httptest.NewServer(NewServer(state, db, 0).Handler())
	t.Cleanup(ts.Close)
	return ts, state, db
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected status %d, got %d", url, wantStatus, resp.StatusCode)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
}

func TestKeyState(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	var got struct {
		Key     string `json:"key"`
		Pressed bool   `json:"pressed"`
	}
	getJSON(t, ts.URL+"/api/keys/Esc", http.StatusOK, &got)
	if got.Key != "Esc" || !got.Pressed {
		t.Errorf("Expected Esc pressed, got %+v", got)
	}

	getJSON(t, ts.URL+"/api/keys/Page%20Up", http.StatusOK, &got)
	if got.Key != "Page Up" || got.Pressed {
		t.Errorf("Expected Page Up released, got %+v", got)
	}
}

func TestKeyStateErrors(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	getJSON(t, ts.URL+"/api/keys/Hyper", http.StatusNotFound, nil)
	getJSON(t, ts.URL+"/api/keys/", http.StatusNotFound, nil)
	getJSON(t, ts.URL+"/api/keys/Print%20Screen", http.StatusUnprocessableEntity, nil)

	resp, err := http.Post(ts.URL+"/api/keys/Esc", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for POST, got %d", resp.StatusCode)
	}
}

func TestKeysAndStatus(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	var keys []keyInfo
	getJSON(t, ts.URL+"/api/keys", http.StatusOK, &keys)
	if len(keys) != len(keycode.All()) {
		t.Fatalf("Expected %d keys, got %d", len(keycode.All()), len(keys))
	}
	if keys[0].Name != "Back Space" {
		t.Errorf("Expected first key Back Space, got %s", keys[0].Name)
	}
	for _, k := range keys {
		if k.Mapped != platform.Supported {
			t.Errorf("Key %s: mapped = %v, expected %v", k.Name, k.Mapped, platform.Supported)
		}
	}

	var status struct {
		Supported bool `json:"supported"`
		Recording bool `json:"recording"`
	}
	getJSON(t, ts.URL+"/api/status", http.StatusOK, &status)
	if status.Recording {
		t.Error("Expected recording to be off without a database")
	}

	getJSON(t, ts.URL+"/api/history", http.StatusServiceUnavailable, nil)
	getJSON(t, ts.URL+"/api/stats", http.StatusServiceUnavailable, nil)
}

func TestRecordingHistoryAndStats(t *testing.T) {
	ts, _, db := newTestServer(t, true)

	getJSON(t, ts.URL+"/api/keys/Esc", http.StatusOK, nil)
	getJSON(t, ts.URL+"/api/keys/Tab", http.StatusOK, nil)
	getJSON(t, ts.URL+"/api/keys/esc", http.StatusOK, nil)

	count, err := db.CountSamples()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("Expected 3 recorded samples, got %d", count)
	}

	var history []struct {
		Key     string `json:"key"`
		Pressed bool   `json:"pressed"`
		Source  string `json:"source"`
	}
	getJSON(t, ts.URL+"/api/history?key=Esc", http.StatusOK, &history)
	if len(history) != 2 {
		t.Fatalf("Expected 2 Esc samples, got %d", len(history))
	}
	for _, h := range history {
		if h.Key != "Esc" || !h.Pressed || h.Source != "http" {
			t.Errorf("Unexpected sample %+v", h)
		}
	}

	getJSON(t, ts.URL+"/api/history?limit=1", http.StatusOK, &history)
	if len(history) != 1 {
		t.Errorf("Expected 1 sample with limit=1, got %d", len(history))
	}

	var stats struct {
		TotalSamples int `json:"totalSamples"`
		PressedCount int `json:"pressedCount"`
		DistinctKeys int `json:"distinctKeys"`
	}
	getJSON(t, ts.URL+"/api/stats?days=1", http.StatusOK, &stats)
	if stats.TotalSamples != 3 || stats.PressedCount != 2 || stats.DistinctKeys != 2 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestWebSocketQuery(t *testing.T) {
	ts, state, _ := newTestServer(t, false)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	tests := []struct {
		key       string
		wantKey   string
		pressed   bool
		wantError bool
	}{
		{"Esc", "Esc", true, false},
		{"arrow up", "Arrow Up", false, false},
		{"Hyper", "Hyper", false, true},
		{"Print Screen", "Print Screen", false, true},
	}

	for _, tt := range tests {
		if err := conn.WriteJSON(wsRequest{Key: tt.key}); err != nil {
			t.Fatalf("WriteJSON failed: %v", err)
		}
		var resp wsResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("ReadJSON failed: %v", err)
		}
		if resp.Key != tt.wantKey || resp.Pressed != tt.pressed || (resp.Error != "") != tt.wantError {
			t.Errorf("Query %q: unexpected response %+v", tt.key, resp)
		}
	}

	state.mu.Lock()
	queries := state.queries
	state.mu.Unlock()
	if queries != 3 {
		t.Errorf("Expected 3 state queries, got %d", queries)
	}
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"", 7, 7},
		{"30", 7, 30},
		{"0", 7, 0},
		{"-1", 7, 7},
		{"abc", 50, 50},
	}
	for _, tt := range tests {
		if got := intParam(tt.in, tt.def); got != tt.want {
			t.Errorf("intParam(%q, %d) = %d, expected %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestWebSocketInvalidJSON(t *testing.T) {
	ts, _, _ := newTestServer(t, false)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}
	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if !strings.HasPrefix(resp.Error, "invalid request") {
		t.Errorf("Expected invalid request error, got %+v", resp)
	}

	// the connection keeps serving queries
	if err := conn.WriteJSON(wsRequest{Key: "Esc"}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	resp = wsResponse{}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if resp.Key != "Esc" || !resp.Pressed || resp.Error != "" {
		t.Errorf("Expected Esc pressed, got %+v", resp)
	}
}
