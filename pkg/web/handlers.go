package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/teslashibe/go-nosemouse/pkg/hub"
)

// ZoneInfo describes one ring around the origin
type ZoneInfo struct {
	Name   string `json:"name"`
	Radius int    `json:"radius"`
}

// handleStatus returns the latest status snapshot
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.Status())
}

// handleZones returns the configured thresholds
func (s *Server) handleZones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"zones": []ZoneInfo{
			{Name: "slow", Radius: s.zones.Slow},
			{Name: "normal", Radius: s.zones.Normal},
			{Name: "fast", Radius: s.zones.Fast},
			{Name: "perimeter", Radius: s.zones.Perimeter},
		},
		"closed_eye": s.zones.ClosedEye,
	})
}

// handleReset drops the origin; the next frame with a face starts a new session
func (s *Server) handleReset(c *fiber.Ctx) error {
	if s.OnReset == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "reset not configured",
		})
	}
	s.OnReset()
	return c.JSON(fiber.Map{"reset": true})
}

// handleEventsWS streams decision events
func (s *Server) handleEventsWS(c *websocket.Conn) {
	hub.NewClient(s.eventHub, c).Run()
}

// handleCameraWS streams JPEG preview frames
func (s *Server) handleCameraWS(c *websocket.Conn) {
	hub.NewClient(s.cameraHub, c).Run()
}
