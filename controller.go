package image3d

import (
	"io"
	"log/slog"
)

// Controller is the piece a host talks to. It owns the configuration, the base Mesh, the InteractionState, and the
// canvas size, and redraws to its Sink exactly once per intent. A Controller is not safe for concurrent use; hosts call it
// from their event loop.
type Controller struct {
	config   Config
	pipeline *Pipeline
	mesh     Mesh
	state    InteractionState
	sink     Sink
	logger   *slog.Logger

	width, height float64
	meshRadius    float64
	lastStats     FrameStats
}

// NewController creates a Controller drawing to the sink given, on a canvas of the configured size. The mesh is generated
// right away, but nothing is drawn until the first call to Redraw, Handle, or Resize. A nil logger discards log output.
func NewController(cfg Config, sink Sink, logger *slog.Logger) *Controller {

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		config:   cfg,
		pipeline: NewPipeline(cfg),
		state:    NewInteractionState(),
		sink:     sink,
		logger:   logger,
		width:    float64(cfg.Width),
		height:   float64(cfg.Height),
	}

	c.regenerate()

	return c

}

func (c *Controller) regenerate() {
	radius := c.config.RadiusFor(c.width, c.height)
	if radius == c.meshRadius && c.mesh.Polygons != nil {
		return
	}
	c.mesh = GenerateMesh(radius, c.config.NAlpha, c.config.NBeta)
	c.meshRadius = radius
	c.logger.Debug("mesh generated", "radius", radius, "polygons", len(c.mesh.Polygons))
}

// Handle applies the intent to the interaction state and runs one full frame.
func (c *Controller) Handle(intent Intent) FrameStats {
	c.state = ApplyIntent(c.config, c.state, intent)
	c.logger.Debug("intent", "intent", intent.String(), "zoom", c.state.Zoom, "pan_x", c.state.PanX, "pan_y", c.state.PanY)
	return c.Redraw()
}

// Resize sets the canvas size and redraws. If the mesh radius is derived from the canvas, the mesh is regenerated.
// Non-positive sizes are ignored (minimized windows report 0x0).
func (c *Controller) Resize(width, height float64) FrameStats {
	if width <= 0 || height <= 0 {
		return c.lastStats
	}
	if width == c.width && height == c.height {
		return c.lastStats
	}
	c.width, c.height = width, height
	c.regenerate()
	return c.Redraw()
}

// SetConfig swaps the configuration (e.g. after a config file reload), keeping the interaction state, and redraws.
func (c *Controller) SetConfig(cfg Config) FrameStats {
	c.config = cfg
	c.pipeline = NewPipeline(cfg)
	c.meshRadius = 0
	c.mesh = Mesh{}
	c.regenerate()
	c.logger.Info("config applied", "screen_policy", string(cfg.ScreenPolicy), "rotation_mode", string(cfg.RotationMode))
	return c.Redraw()
}

// Redraw runs one full frame with the current state.
func (c *Controller) Redraw() FrameStats {
	c.lastStats = c.pipeline.Frame(c.mesh, c.state, c.width, c.height, c.sink)
	return c.lastStats
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.config
}

// State returns the current interaction state.
func (c *Controller) State() InteractionState {
	return c.state
}

// Mesh returns the base mesh.
func (c *Controller) Mesh() Mesh {
	return c.mesh
}

// Size returns the canvas size.
func (c *Controller) Size() (float64, float64) {
	return c.width, c.height
}

// LastStats returns the stats of the most recent frame.
func (c *Controller) LastStats() FrameStats {
	return c.lastStats
}
