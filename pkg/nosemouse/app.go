package nosemouse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/teslashibe/go-nosemouse/internal/log"
	"github.com/teslashibe/go-nosemouse/pkg/camera"
	"github.com/teslashibe/go-nosemouse/pkg/debug"
	"github.com/teslashibe/go-nosemouse/pkg/display"
	"github.com/teslashibe/go-nosemouse/pkg/pointer"
	"github.com/teslashibe/go-nosemouse/pkg/pointer/desktop"
	"github.com/teslashibe/go-nosemouse/pkg/tracking"
	"github.com/teslashibe/go-nosemouse/pkg/tracking/detection"
	"github.com/teslashibe/go-nosemouse/pkg/web"
	"gocv.io/x/gocv"
)

// detectWarnEvery limits how often repeated detection failures are logged.
const detectWarnEvery = 100

// FrameSource yields prepared frames. camera.Capture implements it.
type FrameSource interface {
	Read() (gocv.Mat, error)
	Close() error
}

// Viewer shows a frame and reports whether the user asked to quit.
// display.Window implements it.
type Viewer interface {
	Show(frame gocv.Mat) (quit bool)
	Close() error
}

// App is the nosemouse application orchestrator.
// It owns every resource and releases them in Shutdown.
type App struct {
	config Config
	logger *slog.Logger

	source   FrameSource
	provider detection.Provider
	viewer   Viewer
	pointer  pointer.Actuator

	controller *tracking.Controller
	dashboard  *web.Server
	fps        *display.FPSMeter

	frames       int
	detectErrors int

	shutdownOnce sync.Once
}

// New creates an application with the given configuration.
// Environment overrides are applied by the caller, see Config.LoadEnvConfig.
func New(cfg Config) (*App, error) {
	cfg.ResolveModels()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug.Enabled = cfg.Debug
	debug.Tracking = cfg.DebugTracking

	return &App{
		config: cfg,
		logger: log.With("component", "app"),
		fps:    display.NewFPSMeter(0.1),
	}, nil
}

// Init acquires the camera, models, window and pointer.
// Call this after New() and before Run(). Resources already set are kept.
func (a *App) Init() error {
	fmt.Println("🖱️  nosemouse - head tracking mouse")
	fmt.Println("==================================")
	if debug.Enabled {
		fmt.Println("🐛 Debug mode enabled")
	}

	if a.source == nil {
		fmt.Print("📷 Opening camera... ")
		capture, err := camera.Open(a.config.Camera)
		if err != nil {
			fmt.Println("❌")
			return fmt.Errorf("camera: %w", err)
		}
		a.source = capture
		fmt.Println("✅")
	}

	if a.provider == nil {
		fmt.Print("👁️  Loading face models... ")
		mesh, err := detection.NewFaceMesh(a.config.Detection)
		if err != nil {
			fmt.Println("❌")
			fmt.Printf("   (models are read from %s; set NOSEMOUSE_MODELS or --models)\n", a.config.ModelDir)
			return fmt.Errorf("landmarks: %w", err)
		}
		a.provider = mesh
		fmt.Println("✅")
	}

	if a.viewer == nil && !a.config.Headless {
		a.viewer = display.NewWindow(display.DefaultTitle)
	}

	if a.pointer == nil {
		a.pointer = a.newPointer()
	}

	controller, err := tracking.NewController(a.config.Tracking, a.pointer, a.logger)
	if err != nil {
		return fmt.Errorf("tracking: %w", err)
	}
	a.controller = controller

	if a.config.DashboardPort != "" && a.dashboard == nil {
		a.dashboard = web.NewServer(a.config.DashboardPort, a.config.Tracking.Zones)
		a.dashboard.SetMode(a.config.Headless, a.config.DryRun)
		a.dashboard.OnReset = a.controller.Reset
	}

	return nil
}

// newPointer picks the real cursor or a recorder for dry runs.
func (a *App) newPointer() pointer.Actuator {
	var p pointer.Actuator
	if a.config.DryRun {
		fmt.Println("🧪 Dry run: pointer actions are logged, not performed")
		p = pointer.NewRecorder()
	} else {
		w, h := desktop.ScreenSize()
		a.logger.Info("pointer ready", "screen_width", w, "screen_height", h)
		p = desktop.New()
	}
	if debug.Enabled || a.config.DryRun {
		p = pointer.WithLogging(p, log.L())
	}
	return p
}

// Controller returns the control loop. Nil before Init.
func (a *App) Controller() *tracking.Controller {
	return a.controller
}

// Run processes frames until ctx is cancelled or the user presses q.
// A camera failure or a landmark set missing a required id ends the loop with an error.
func (a *App) Run(ctx context.Context) error {
	if a.controller == nil {
		return fmt.Errorf("run: app not initialized")
	}

	if a.dashboard != nil {
		a.dashboard.StartAsync(ctx)
	}

	if a.viewer != nil {
		fmt.Println("\n👃 Tracking! Look at the camera to set the origin.")
		fmt.Println("   (q in the window or Ctrl+C to exit)")
	} else {
		fmt.Println("\n👃 Tracking headless. Ctrl+C to exit.")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		quit, err := a.processFrame()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// processFrame runs one iteration of the loop.
func (a *App) processFrame() (quit bool, err error) {
	frame, err := a.source.Read()
	if err != nil {
		return false, fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()
	a.frames++

	result, err := a.provider.Detect(frame)
	if err != nil {
		// Treated as no face this frame
		if a.detectErrors%detectWarnEvery == 0 {
			a.logger.Warn("landmark detection failed", "error", err, "failures", a.detectErrors+1)
		}
		a.detectErrors++
		result = nil
	}

	decision, err := a.controller.Step(a.provider.Positions(result))
	if err != nil {
		return false, fmt.Errorf("frame %d: %w", a.frames, err)
	}

	fps := a.fps.Tick(time.Now())

	if a.dashboard != nil {
		a.dashboard.Record(decision, a.controller.Session(), fps)
	}

	wantsPreview := a.dashboard != nil && a.dashboard.WantsCamera()
	if a.viewer == nil && !wantsPreview {
		return false, nil
	}

	if a.config.Guides {
		a.provider.RenderGuides(&frame, result, detection.GuideOptions{
			Points:   true,
			Features: decision.HasOrigin,
			Box:      debug.Enabled,
		})
	}
	display.Draw(&frame, decision, a.config.Tracking.Zones)
	display.DrawFPS(&frame, fps)

	if wantsPreview {
		a.sendPreview(frame)
	}

	if a.viewer != nil {
		return a.viewer.Show(frame), nil
	}
	return false, nil
}

// sendPreview JPEG-encodes the annotated frame for dashboard clients.
func (a *App) sendPreview(frame gocv.Mat) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, frame,
		[]int{gocv.IMWriteJpegQuality, a.config.Camera.Quality})
	if err != nil {
		debug.Log("⚠️  Preview encode failed: %v\n", err)
		return
	}
	defer buf.Close()

	// Copy out of native memory before the buffer is released
	data := append([]byte(nil), buf.GetBytes()...)
	a.dashboard.SendCameraFrame(data)
}

// Shutdown releases all resources. Safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		fmt.Println("\n👋 Goodbye!")

		if a.dashboard != nil {
			if err := a.dashboard.Shutdown(); err != nil {
				a.logger.Warn("dashboard shutdown", "error", err)
			}
		}
		if a.viewer != nil {
			a.viewer.Close()
		}
		if a.provider != nil {
			a.provider.Close()
		}
		if a.source != nil {
			a.source.Close()
		}
		if a.controller != nil {
			if s := a.controller.Session(); s != nil {
				a.logger.Info("final session", "session", s.ID, "frames", s.Frames, "clicks", s.Clicks)
			}
		}
	})
}
