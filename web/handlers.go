package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
	"github.com/Flone-dnb/system-wide-key-state/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleStatus reports the platform and whether samples are recorded
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"platform":  runtime.GOOS,
		"supported": platform.Supported,
		"keys":      len(keycode.All()),
		"recording": s.db != nil,
	})
}

type keyInfo struct {
	Name       string `json:"name"`
	NativeCode uint32 `json:"nativeCode"`
	Mapped     bool   `json:"mapped"`
	Mouse      bool   `json:"mouse"`
}

// handleKeys lists every key with its native code
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	keys := keycode.All()
	infos := make([]keyInfo, 0, len(keys))
	for _, k := range keys {
		code, ok := platform.NativeCode(k)
		infos = append(infos, keyInfo{
			Name:       k.Name(),
			NativeCode: code,
			Mapped:     ok,
			Mouse:      k.IsMouseButton(),
		})
	}

	writeJSON(w, http.StatusOK, infos)
}

// handleKeyState queries one key named in the path, e.g. /api/keys/Page%20Up
func (s *Server) handleKeyState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/keys/")
	k, err := keycode.Parse(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	pressed, err := s.query(k, "http")
	switch {
	case errors.Is(err, platform.ErrUnmapped), errors.Is(err, platform.ErrNoKeycode):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		slog.Error("Failed to query key state", "key", k.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to query key state")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"key":     k.Name(),
		"pressed": pressed,
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// handleHistory returns recorded samples, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "recording is disabled")
		return
	}

	q := r.URL.Query()
	limit := intParam(q.Get("limit"), 50)
	offset := intParam(q.Get("offset"), 0)

	type sampleJSON struct {
		ID         int64  `json:"id"`
		Timestamp  string `json:"timestamp"`
		Key        string `json:"key"`
		NativeCode uint32 `json:"nativeCode"`
		Platform   string `json:"platform"`
		Pressed    bool   `json:"pressed"`
		Source     string `json:"source"`
	}

	var samples []storage.Sample
	var err error
	if key := q.Get("key"); key != "" {
		k, perr := keycode.Parse(key)
		if perr != nil {
			writeError(w, http.StatusNotFound, perr.Error())
			return
		}
		samples, err = s.db.GetSamplesForKey(k.Name(), limit)
	} else {
		samples, err = s.db.GetSamples(limit, offset)
	}
	if err != nil {
		slog.Error("Failed to get history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get history")
		return
	}

	out := make([]sampleJSON, 0, len(samples))
	for _, smp := range samples {
		out = append(out, sampleJSON{
			ID:         smp.ID,
			Timestamp:  smp.Timestamp.Format(time.RFC3339Nano),
			Key:        smp.KeyName,
			NativeCode: smp.NativeCode,
			Platform:   smp.Platform,
			Pressed:    smp.Pressed,
			Source:     smp.Source,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// handleStats returns per-key statistics for the specified time range
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "recording is disabled")
		return
	}

	days := intParam(r.URL.Query().Get("days"), 7)
	if days == 0 {
		days = 7
	}

	overall, err := s.db.GetOverallStats(days)
	if err != nil {
		slog.Error("Failed to get overall stats", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get statistics")
		return
	}

	keys, err := s.db.GetKeyStats(days)
	if err != nil {
		slog.Error("Failed to get key stats", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get statistics")
		return
	}

	type keyStatsJSON struct {
		Key          string `json:"key"`
		TotalSamples int    `json:"totalSamples"`
		PressedCount int    `json:"pressedCount"`
		LastPressed  string `json:"lastPressed,omitempty"`
	}

	perKey := make([]keyStatsJSON, 0, len(keys))
	for _, ks := range keys {
		entry := keyStatsJSON{
			Key:          ks.KeyName,
			TotalSamples: ks.TotalSamples,
			PressedCount: ks.PressedCount,
		}
		if ks.LastPressed != nil {
			entry.LastPressed = ks.LastPressed.Format(time.RFC3339Nano)
		}
		perKey = append(perKey, entry)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":         days,
		"totalSamples": overall.TotalSamples,
		"pressedCount": overall.PressedCount,
		"distinctKeys": overall.DistinctKeys,
		"keys":         perKey,
	})
}

// intParam parses a non-negative query parameter, falling back to def
func intParam(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
