package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mkarrel/go-whitted-raytracer/pkg/renderer"
	"github.com/mkarrel/go-whitted-raytracer/pkg/scene"
)

// Server serves live render previews. A client opens a websocket, sends one
// RenderRequest, and receives row updates as workers finish rows, then a
// final completion message with the render statistics.
type Server struct {
	port     int
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new preview server
func NewServer(port int, logger zerolog.Logger) *Server {
	return &Server{
		port:   port,
		logger: logger,
		upgrader: websocket.Upgrader{
			// previews are served same-origin or from file:// during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the client's render configuration
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene name, e.g. "default"
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	Samples  int    `json:"samples"`  // Antialiasing samples per pixel
	Adaptive bool   `json:"adaptive"` // Adaptive antialiasing
	Workers  int    `json:"workers"`  // Worker goroutines (0 = default)
}

// RowMessage streams one completed row of RGBA bytes
type RowMessage struct {
	Type string `json:"type"` // "row"
	Y    int    `json:"y"`
	Pix  string `json:"pix"` // base64 RGBA bytes, Width*4 long
}

// CompleteMessage ends a render stream
type CompleteMessage struct {
	Type  string `json:"type"` // "complete"
	Stats Stats  `json:"stats"`
}

// ErrorMessage reports a failed request
type ErrorMessage struct {
	Type  string `json:"type"` // "error"
	Error string `json:"error"`
}

// Stats mirrors renderer.RenderStats for the wire
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	TotalRays      int64   `json:"totalRays"`
	AverageSamples float64 `json:"averageSamples"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// Start starts the preview server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("static/")))
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info().Str("addr", addr).Msg("starting preview server")
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender upgrades to a websocket and streams one render
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Warn().Err(err).Msg("bad render request")
		return
	}

	if err := s.streamRender(conn, req); err != nil {
		s.logger.Warn().Err(err).Msg("render stream ended with error")
	}
}

// streamRender runs one render, pushing rows to the socket as they finish
func (s *Server) streamRender(conn *websocket.Conn, req RenderRequest) error {
	sceneObj, err := createScene(req.Scene)
	if err != nil {
		return conn.WriteJSON(ErrorMessage{Type: "error", Error: err.Error()})
	}

	cfg := renderer.DefaultConfig()
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.Samples > 0 {
		cfg.Samples = req.Samples
	}
	cfg.Adaptive = req.Adaptive
	cfg.Workers = req.Workers

	r := renderer.NewRenderer(cfg, s.logger)

	// workers report rows concurrently; gorilla connections allow only one
	// writer at a time
	var writeMu sync.Mutex
	var writeErr error
	r.SetProgress(func(u renderer.RowUpdate) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(RowMessage{
			Type: "row",
			Y:    u.Y,
			Pix:  base64.StdEncoding.EncodeToString(u.Pix),
		})
	})

	_, stats := r.Render(sceneObj)
	if writeErr != nil {
		return writeErr
	}

	return conn.WriteJSON(CompleteMessage{
		Type: "complete",
		Stats: Stats{
			TotalPixels:    stats.TotalPixels,
			TotalSamples:   stats.TotalSamples,
			TotalRays:      stats.TotalRays,
			AverageSamples: stats.AverageSamples,
			ElapsedMs:      stats.Elapsed.Milliseconds(),
		},
	})
}

// createScene builds a scene by name
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "", "default":
		return scene.NewDefaultScene(), nil
	case "spheregrid":
		return scene.NewSphereGridScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
