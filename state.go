package image3d

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownIntent = errors.New("unknown intent")

// MinZoom and MaxZoom bound the zoom factor ApplyIntent will produce. Zooming out never degenerates the scale to 0, and
// zooming in never overflows it to +Inf.
const (
	MinZoom = 1e-6
	MaxZoom = 1e6
)

// InteractionState is everything the user has changed about the view. It is only ever changed through ApplyIntent, and is
// read by the Pipeline once per frame.
type InteractionState struct {
	Rotation    AffineTransform // Accumulated rotation (matrix and degenerate rotation modes)
	Angle       float64         // Accumulated rotation angle in [0, 2*Pi) (angle rotation mode)
	Zoom        float64         // Zoom factor around the canvas center; always > 0
	PanX, PanY  float64         // Screen-space pan offset
	FillEnabled bool            // Whether polygons get filled as well as stroked
	Plane       RotationPlane   // The plane rotate intents rotate in
}

// NewInteractionState returns the initial state: no rotation, a zoom of 1, no pan, filling on, and rotation in the XY plane.
func NewInteractionState() InteractionState {
	return InteractionState{
		Rotation:    Identity(),
		Zoom:        1,
		FillEnabled: true,
		Plane:       PlaneXY,
	}
}

// IntentKind enumerates the discrete user intents.
type IntentKind int

const (
	IntentRotatePositive IntentKind = iota
	IntentRotateNegative
	IntentSelectPlane
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentZoomIn
	IntentZoomOut
	IntentToggleFill
	IntentReset
)

var intentNames = map[IntentKind]string{
	IntentRotatePositive: "rotate+",
	IntentRotateNegative: "rotate-",
	IntentSelectPlane:    "select-plane",
	IntentPanLeft:        "pan-left",
	IntentPanRight:       "pan-right",
	IntentPanUp:          "pan-up",
	IntentPanDown:        "pan-down",
	IntentZoomIn:         "zoom+",
	IntentZoomOut:        "zoom-",
	IntentToggleFill:     "toggle-fill",
	IntentReset:          "reset",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Intent is a single discrete user action forwarded by a host. Plane is only read for IntentSelectPlane.
type Intent struct {
	Kind  IntentKind
	Plane RotationPlane
}

func (i Intent) String() string {
	if i.Kind == IntentSelectPlane {
		return "plane-" + strings.ToLower(i.Plane.String())
	}
	return i.Kind.String()
}

// Shorthands for hosts.
var (
	RotatePositive = Intent{Kind: IntentRotatePositive}
	RotateNegative = Intent{Kind: IntentRotateNegative}
	PanLeft        = Intent{Kind: IntentPanLeft}
	PanRight       = Intent{Kind: IntentPanRight}
	PanUp          = Intent{Kind: IntentPanUp}
	PanDown        = Intent{Kind: IntentPanDown}
	ZoomIn         = Intent{Kind: IntentZoomIn}
	ZoomOut        = Intent{Kind: IntentZoomOut}
	ToggleFill     = Intent{Kind: IntentToggleFill}
	Reset          = Intent{Kind: IntentReset}
)

// SelectPlane returns the intent selecting the rotation plane given.
func SelectPlane(plane RotationPlane) Intent {
	return Intent{Kind: IntentSelectPlane, Plane: plane}
}

// ParseIntent parses an intent by the name Intent.String gives it ("zoom+", "pan-left", "plane-xz", ...).
func ParseIntent(name string) (Intent, error) {

	name = strings.ToLower(strings.TrimSpace(name))

	if plane, ok := strings.CutPrefix(name, "plane-"); ok {
		if p, ok := ParsePlane(plane); ok && plane != "" {
			return SelectPlane(p), nil
		}
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
	}

	for kind, n := range intentNames {
		if n == name && kind != IntentSelectPlane {
			return Intent{Kind: kind}, nil
		}
	}

	return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, name)

}

// ApplyIntent returns the state that results from applying the intent to the state given. It does not render anything.
//
// Rotations compose the step rotation in the active plane onto the accumulated transform and also advance the scalar angle
// (wrapped into [0, 2*Pi)); zooming multiplies or divides the zoom by 1+cfg.ZoomRatio; panning moves by cfg.PanStep, with
// "up" being negative Y as screens grow downwards.
func ApplyIntent(cfg Config, state InteractionState, intent Intent) InteractionState {

	// A zero rotation or zoom is the initial one.
	if state.Rotation.IsZero() {
		state.Rotation = Identity()
	}
	if state.Zoom == 0 {
		state.Zoom = 1
	}

	switch intent.Kind {

	case IntentRotatePositive, IntentRotateNegative:
		angle := cfg.RotationStep()
		if intent.Kind == IntentRotateNegative {
			angle = -angle
		}
		a, b := state.Plane.Axes()
		step := Rotate(angle, a, b)
		if cfg.RotationMode == RotationDegenerate {
			step = RotateDegenerate(angle, a, b)
		}
		state.Rotation = state.Rotation.ComposeWith(step)
		state.Angle = WrapAngle(state.Angle + angle)

	case IntentSelectPlane:
		state.Plane = intent.Plane

	case IntentPanLeft:
		state.PanX -= cfg.PanStep
	case IntentPanRight:
		state.PanX += cfg.PanStep
	case IntentPanUp:
		state.PanY -= cfg.PanStep
	case IntentPanDown:
		state.PanY += cfg.PanStep

	case IntentZoomIn:
		state.Zoom *= 1 + cfg.ZoomRatio
	case IntentZoomOut:
		state.Zoom /= 1 + cfg.ZoomRatio

	case IntentToggleFill:
		state.FillEnabled = !state.FillEnabled

	case IntentReset:
		return NewInteractionState()

	}

	state.Zoom = clampZoom(state.Zoom)

	return state

}

func clampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return MinZoom
	}
	return clamp(zoom, MinZoom, MaxZoom)
}
