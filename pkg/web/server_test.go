package web

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"github.com/teslashibe/go-nosemouse/pkg/tracking"
)

func TestEventType(t *testing.T) {
	tests := []struct {
		name string
		d    tracking.Decision
		want string
	}{
		{"idle", tracking.Decision{HasOrigin: true, Zone: tracking.ZoneDead}, ""},
		{"skipped", tracking.Decision{Skipped: true}, ""},
		{"established", tracking.Decision{Established: true}, "established"},
		{"move", tracking.Decision{Moved: true, Zone: tracking.ZoneSlow}, "move"},
		{"click wins over move", tracking.Decision{Moved: true, Gesture: tracking.GestureLeftClick}, "click"},
		{"right click", tracking.Decision{Gesture: tracking.GestureRightClick}, "click"},
		{"reset", tracking.Decision{Reset: true, Gesture: tracking.GestureReset}, "reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventType(tt.d); got != tt.want {
				t.Errorf("EventType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_Status(t *testing.T) {
	s := NewServer("0", tracking.DefaultZones())
	s.SetMode(true, true)

	session := &tracking.Session{ID: "abc", Origin: landmark.Point{X: 640, Y: 360}}
	s.Record(tracking.Decision{HasOrigin: true, SessionID: "abc", DX: 20, Zone: tracking.ZoneSlow, Moved: true}, session, 29.5)
	s.Record(tracking.Decision{HasOrigin: true, SessionID: "abc", Zone: tracking.ZoneDead}, session, 30)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/status", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
		Last struct {
			Zone string `json:"zone"`
		} `json:"last_decision"`
		Frames   int     `json:"frames"`
		FPS      float64 `json:"fps"`
		Headless bool    `json:"headless"`
		DryRun   bool    `json:"dry_run"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Session.ID != "abc" {
		t.Errorf("session = %q, want abc", got.Session.ID)
	}
	if got.Frames != 2 {
		t.Errorf("frames = %d, want 2", got.Frames)
	}
	if got.FPS != 30 {
		t.Errorf("fps = %v, want 30", got.FPS)
	}
	if got.Last.Zone != "dead" {
		t.Errorf("last zone = %q, want dead", got.Last.Zone)
	}
	if !got.Headless || !got.DryRun {
		t.Error("mode flags not reported")
	}
}

func TestServer_Zones(t *testing.T) {
	s := NewServer("0", tracking.DefaultZones())

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/zones", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var got struct {
		Zones     []ZoneInfo `json:"zones"`
		ClosedEye int        `json:"closed_eye"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []int{15, 30, 45, 60}
	if len(got.Zones) != len(want) {
		t.Fatalf("expected %d zones, got %d", len(want), len(got.Zones))
	}
	for i, r := range want {
		if got.Zones[i].Radius != r {
			t.Errorf("zone %s radius = %d, want %d", got.Zones[i].Name, got.Zones[i].Radius, r)
		}
	}
	if got.ClosedEye != 5 {
		t.Errorf("closed_eye = %d, want 5", got.ClosedEye)
	}
}

func TestServer_Reset(t *testing.T) {
	s := NewServer("0", tracking.DefaultZones())

	resp, err := s.app.Test(httptest.NewRequest("POST", "/api/reset", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Errorf("expected 503 without callback, got %d", resp.StatusCode)
	}

	calls := 0
	s.OnReset = func() { calls++ }

	resp, err = s.app.Test(httptest.NewRequest("POST", "/api/reset", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if calls != 1 {
		t.Errorf("expected 1 reset call, got %d", calls)
	}
}

func TestServer_WebsocketRequiresUpgrade(t *testing.T) {
	s := NewServer("0", tracking.DefaultZones())

	for _, path := range []string{"/ws/events", "/ws/camera"} {
		resp, err := s.app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("%s: request failed: %v", path, err)
		}
		if resp.StatusCode != 426 {
			t.Errorf("%s: expected 426, got %d", path, resp.StatusCode)
		}
	}
	if s.WantsCamera() {
		t.Error("no camera clients expected")
	}
}
