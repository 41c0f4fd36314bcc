// coasterview displays a track file in an interactive OpenGL window.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/coastermesh/internal/config"
	"github.com/Faultbox/coastermesh/internal/logger"
	"github.com/Faultbox/coastermesh/internal/viewer"
	"github.com/Faultbox/coastermesh/pkg/math"
	"github.com/Faultbox/coastermesh/pkg/track"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	curve, err := cfg.Track.Curve()
	if err != nil {
		return err
	}

	opts, styleKnown := cfg.Track.Options()
	if !styleKnown {
		logger.Debug("unknown style, using default",
			zap.String("style", cfg.Track.Style),
			zap.String("fallback", opts.Style.String()),
		)
	}

	mesh, err := track.Build(curve, cfg.Track.Divisions, opts)
	if err != nil {
		return err
	}
	logger.Info("track mesh built",
		zap.Int("divisions", cfg.Track.Divisions),
		zap.String("style", opts.Style.String()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	window, err := viewer.NewWindow(viewer.WindowConfig{
		Title:      "coasterview",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := viewer.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Close()

	model := viewer.NewModel(mesh)
	defer model.Delete()

	camera := viewer.NewOrbitCamera()
	camera.Center = boundsCenter(mesh)

	width, height := window.DrawableSize()
	renderer.Resize(width, height)

	var leftMouseDown bool
	var lastX, lastY float32

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					width, height = window.DrawableSize()
					renderer.Resize(width, height)
				}

			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					leftMouseDown = e.State == sdl.PRESSED
					lastX, lastY = float32(e.X), float32(e.Y)
				}

			case *sdl.MouseMotionEvent:
				if leftMouseDown {
					camera.HandleDrag(float32(e.X)-lastX, float32(e.Y)-lastY)
				}
				lastX, lastY = float32(e.X), float32(e.Y)

			case *sdl.MouseWheelEvent:
				camera.HandleZoom(float32(e.Y))
			}
		}

		aspect := float32(width) / float32(height)
		projection := math.Perspective(gomath.Pi/4, aspect, 0.1, 500)
		view := camera.ViewMatrix()

		renderer.Clear()
		renderer.Draw(model, view, projection)
		window.SwapBuffers()
	}

	return nil
}

func boundsCenter(mesh *track.Mesh) math.Vec3 {
	return math.Vec3{
		X: (mesh.Bounds.Min[0] + mesh.Bounds.Max[0]) / 2,
		Y: (mesh.Bounds.Min[1] + mesh.Bounds.Max[1]) / 2,
		Z: (mesh.Bounds.Min[2] + mesh.Bounds.Max[2]) / 2,
	}
}
