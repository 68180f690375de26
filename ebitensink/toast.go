package ebitensink

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ToastDuration is how long, in seconds, a toast takes to fade out.
const ToastDuration = 1.5

// Toast is a short HUD message that fades out over ToastDuration seconds.
type Toast struct {
	Message string
	Alpha   float32

	tween *gween.Tween
}

// Show sets the message and restarts the fade from fully opaque.
func (t *Toast) Show(message string) {
	t.Message = message
	t.Alpha = 1
	t.tween = gween.New(1, 0, ToastDuration, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (t *Toast) Update(dt float32) {
	if t.tween == nil {
		return
	}
	alpha, done := t.tween.Update(dt)
	t.Alpha = alpha
	if done {
		t.Alpha = 0
		t.tween = nil
	}
}

// Visible returns true while the toast has not fully faded out.
func (t *Toast) Visible() bool {
	return t.Message != "" && t.Alpha > 0
}
