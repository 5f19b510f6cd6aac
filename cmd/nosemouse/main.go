// nosemouse - control the mouse pointer with your nose and eyelids
// Uses a webcam, YuNet face detection and a face-mesh landmark model
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-nosemouse/internal/config"
	ilog "github.com/teslashibe/go-nosemouse/internal/log"
	"github.com/teslashibe/go-nosemouse/pkg/camera"
	"github.com/teslashibe/go-nosemouse/pkg/nosemouse"
)

func main() {
	cfg := parseFlags()
	ilog.Init(cfg.LogLevel)

	app, err := nosemouse.New(cfg)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := app.Init(); err != nil {
		app.Shutdown()
		log.Fatalf("❌ Initialization failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = app.Run(ctx)
	cancel()
	app.Shutdown()
	if err != nil {
		log.Fatalf("❌ Runtime error: %v", err)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() nosemouse.Config {
	cfg := nosemouse.DefaultConfig()
	cfg.LoadEnvConfig()
	zones := &cfg.Tracking.Zones

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	debugTracking := flag.Bool("debug-tracking", false, "Print offsets, zones and eye gaps for every frame")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	device := flag.Int("camera", cfg.Camera.Device, "Camera device index (overrides NOSEMOUSE_CAMERA)")
	preset := flag.String("preset", "", "Camera preset: default, legacy, 1080p, fast")
	models := flag.String("models", cfg.ModelDir, "Model directory (overrides NOSEMOUSE_MODELS)")
	headless := flag.Bool("headless", false, "Run without the preview window")
	dryRun := flag.Bool("dry-run", false, "Log pointer actions instead of moving the cursor")
	noGuides := flag.Bool("no-guides", false, "Hide landmark dots and eye outlines")
	dashboard := flag.String("dashboard-port", "", "Serve the web dashboard on this port (disabled when empty)")

	flag.IntVar(&zones.Slow, "slow", zones.Slow, "Slow zone radius in pixels")
	flag.IntVar(&zones.Normal, "normal", zones.Normal, "Normal zone radius in pixels")
	flag.IntVar(&zones.Fast, "fast", zones.Fast, "Fast zone radius in pixels")
	flag.IntVar(&zones.Perimeter, "perimeter", zones.Perimeter, "Perimeter radius in pixels")
	flag.IntVar(&zones.ClosedEye, "closed-eye", zones.ClosedEye, "Eyelid gap in pixels below which an eye counts as closed")
	flag.Float64Var(&cfg.Detection.ConfidenceThresh, "confidence", cfg.Detection.ConfidenceThresh, "Minimum face detection confidence")

	flag.Parse()

	if *preset != "" {
		p := camera.GetPreset(*preset)
		if p == nil {
			log.Fatalf("❌ Unknown camera preset %q (have %v)", *preset, camera.PresetNames())
		}
		cfg.Camera = *p
	}

	cfg.Debug, cfg.DebugTracking = *debug, *debugTracking
	cfg.LogLevel = *logLevel
	if *debug && *logLevel == "info" {
		cfg.LogLevel = "debug"
	}
	cfg.Camera.Device = *device
	cfg.ModelDir = *models
	cfg.Headless, cfg.DryRun = *headless, *dryRun
	cfg.Guides = !*noGuides
	cfg.DashboardPort = *dashboard

	if cfg.ModelDir == "" {
		cfg.ModelDir = config.DefaultModelDir
	}
	return cfg
}
