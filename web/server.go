package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
	"github.com/Flone-dnb/system-wide-key-state/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

const (
	wsReadLimit = 512
	wsIdle      = 60 * time.Second
)

// Server exposes key state queries over HTTP and WebSocket
type Server struct {
	state platform.KeyState
	db    *storage.DB // nil disables recording and history
	port  int
}

// NewServer creates a new web server. db may be nil.
func NewServer(state platform.KeyState, db *storage.DB, port int) *Server {
	return &Server{
		state: state,
		db:    db,
		port:  port,
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/keys", s.handleKeys)
	mux.HandleFunc("/api/keys/", s.handleKeyState)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.handleWebSocket)

	return mux
}

// Start serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting web server", "port", s.port, "url", fmt.Sprintf("http://localhost:%d", s.port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// query reads the state of k and records it when storage is enabled
func (s *Server) query(k keycode.KeyCode, source string) (bool, error) {
	pressed, err := s.state.IsPressed(k)
	if err != nil {
		return false, err
	}

	if s.db != nil {
		code, _ := platform.NativeCode(k)
		sample := &storage.Sample{
			KeyName:    k.Name(),
			NativeCode: code,
			Platform:   runtime.GOOS,
			Pressed:    pressed,
			Source:     source,
		}
		if err := s.db.SaveSample(sample); err != nil {
			slog.Warn("Failed to record sample", "key", k.Name(), "error", err)
		}
	}
	return pressed, nil
}

// wsRequest names the key a client wants to query
type wsRequest struct {
	Key string `json:"key"`
}

// wsResponse answers exactly one wsRequest
type wsResponse struct {
	Key     string `json:"key"`
	Pressed bool   `json:"pressed"`
	Error   string `json:"error,omitempty"`
}

// handleWebSocket answers one key query per client message
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	for {
		conn.SetReadDeadline(time.Now().Add(wsIdle))

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("WebSocket read failed", "error", err)
			}
			return
		}

		var resp wsResponse
		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			resp.Error = fmt.Sprintf("invalid request: %v", err)
		} else {
			resp.Key = req.Key
			k, err := keycode.Parse(req.Key)
			if err == nil {
				resp.Key = k.Name()
				resp.Pressed, err = s.query(k, "ws")
			}
			if err != nil {
				resp.Error = err.Error()
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			slog.Debug("WebSocket write failed", "error", err)
			return
		}
	}
}
