// Package web provides the optional live dashboard for nosemouse
package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/teslashibe/go-nosemouse/internal/log"
	"github.com/teslashibe/go-nosemouse/pkg/hub"
	"github.com/teslashibe/go-nosemouse/pkg/tracking"
)

// Status is the snapshot served by /api/status
type Status struct {
	Session  *tracking.Session  `json:"session"`
	Last     *tracking.Decision `json:"last_decision,omitempty"`
	Frames   int                `json:"frames"`
	FPS      float64            `json:"fps"`
	Headless bool               `json:"headless"`
	DryRun   bool               `json:"dry_run"`
	Updated  time.Time          `json:"updated"`
}

// Event is a decision worth telling websocket clients about
type Event struct {
	Type     string            `json:"type"` // established, move, click, reset
	Time     string            `json:"time"`
	Decision tracking.Decision `json:"decision"`
}

// Server is the web dashboard server
type Server struct {
	app   *fiber.App
	port  string
	zones tracking.Zones

	state   Status
	stateMu sync.RWMutex

	eventHub  *hub.Hub
	cameraHub *hub.Hub

	// Manual origin reset callback
	OnReset func()
}

// NewServer creates a new dashboard server
func NewServer(port string, zones tracking.Zones) *Server {
	s := &Server{
		port:      port,
		zones:     zones,
		eventHub:  hub.New("events"),
		cameraHub: hub.New("camera"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "nosemouse dashboard",
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/zones", s.handleZones)
	api.Post("/reset", s.handleReset)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/events", websocket.New(s.handleEventsWS))
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))

	s.app = app
	return s
}

// Start runs the hubs and blocks serving HTTP
func (s *Server) Start(ctx context.Context) error {
	log.Info("dashboard listening", "url", fmt.Sprintf("http://localhost:%s", s.port))

	go s.eventHub.Run(ctx)
	go s.cameraHub.Run(ctx)

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine
func (s *Server) StartAsync(ctx context.Context) {
	go func() {
		if err := s.Start(ctx); err != nil {
			log.Warn("dashboard server error", "error", err)
		}
	}()
}

// SetMode records how the app was started
func (s *Server) SetMode(headless, dryRun bool) {
	s.stateMu.Lock()
	s.state.Headless = headless
	s.state.DryRun = dryRun
	s.stateMu.Unlock()
}

// Record stores the latest decision and broadcasts it when something happened
func (s *Server) Record(d tracking.Decision, session *tracking.Session, fps float64) {
	now := time.Now()

	s.stateMu.Lock()
	s.state.Session = session
	s.state.Last = &d
	s.state.Frames++
	s.state.FPS = fps
	s.state.Updated = now
	s.stateMu.Unlock()

	kind := EventType(d)
	if kind == "" {
		return
	}
	if err := s.eventHub.BroadcastJSON(Event{
		Type:     kind,
		Time:     now.Format("15:04:05.000"),
		Decision: d,
	}); err != nil {
		log.Warn("encode dashboard event", "error", err)
	}
}

// EventType names the notable thing in a decision, or "" if nothing happened
func EventType(d tracking.Decision) string {
	switch {
	case d.Established:
		return "established"
	case d.Reset:
		return "reset"
	case d.Gesture == tracking.GestureLeftClick, d.Gesture == tracking.GestureRightClick:
		return "click"
	case d.Moved:
		return "move"
	}
	return ""
}

// Status returns a copy of the current status
func (s *Server) Status() Status {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// WantsCamera reports whether anyone is watching the preview
func (s *Server) WantsCamera() bool {
	return s.cameraHub.ClientCount() > 0
}

// SendCameraFrame sends a JPEG preview frame to all connected clients
func (s *Server) SendCameraFrame(jpegData []byte) {
	s.cameraHub.BroadcastBinary(jpegData)
}

// Shutdown gracefully stops the web server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
