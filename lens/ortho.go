package lens

import (
	"fmt"
	"math"

	"github.com/milk9111/followzoom/common"
	"github.com/milk9111/followzoom/rig"
)

// OrthoSettings configures an OrthoZoom controller.
type OrthoSettings struct {
	// Pattern selects the raw measurement driving the zoom.
	Pattern Pattern
	// Curve maps the damped measurement to an orthographic size offset.
	Curve Curve
	// Damping is the smoothing time constant in seconds. Zero disables
	// smoothing.
	Damping float64
	// MinSize and MaxSize bound the orthographic half-height.
	MinSize float64
	MaxSize float64
}

// Validate clamps the numeric fields and rejects an inverted size range or
// an out-of-order curve. Called on every edit.
func (s *OrthoSettings) Validate() error {
	if _, ok := patternNames[s.Pattern]; !ok {
		return fmt.Errorf("lens: unknown measurement pattern %d", int(s.Pattern))
	}
	if err := s.Curve.Validate(); err != nil {
		return err
	}
	s.Damping = common.Clamp(s.Damping, 0, MaxDamping)
	s.MinSize = math.Max(s.MinSize, 0)
	s.MaxSize = math.Max(s.MaxSize, 0)
	if s.MinSize > s.MaxSize {
		return fmt.Errorf("lens: size bounds inverted (min %g > max %g)", s.MinSize, s.MaxSize)
	}
	return nil
}

// OrthoZoom adjusts an orthographic camera's half-height from a damped
// measurement pushed through the authored curve. The curve's output is an
// offset applied to the camera's current size, then clamped.
type OrthoZoom struct {
	settings OrthoSettings
	states   stateTable
}

// NewOrthoZoom creates a controller with validated settings.
func NewOrthoZoom(s OrthoSettings) (*OrthoZoom, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &OrthoZoom{settings: s}, nil
}

// Configure replaces the settings, revalidating them.
func (z *OrthoZoom) Configure(s OrthoSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	z.settings = s
	return nil
}

// Settings returns the active settings.
func (z *OrthoZoom) Settings() OrthoSettings {
	return z.settings
}

// MaxDampTime reports the configured damping time constant so the host can
// size its look-ahead buffers.
func (z *OrthoZoom) MaxDampTime() float64 {
	return z.settings.Damping
}

// Release drops the per-camera state for a removed camera.
func (z *OrthoZoom) Release(id rig.CameraID) {
	z.states.release(id)
}

// Signal returns the current damped measurement for a camera, for debug
// display. The second result is false when the camera has no state yet.
func (z *OrthoZoom) Signal(id rig.CameraID) (float64, bool) {
	st, ok := z.states.peek(id)
	if !ok {
		return 0, false
	}
	return st.Value, st.Valid
}

// Update runs the once-per-frame zoom step for one camera. Attach at
// rig.StageZoom.
func (z *OrthoZoom) Update(r *rig.Rig, id rig.CameraID, dt float64) {
	cam := r.Camera(id)
	if cam == nil {
		return
	}
	st := z.states.get(id)
	obs := Observation{
		CameraPos: cam.Position,
		LookAt:    cam.LookAt,
		DeltaTime: dt,
		PrevValid: cam.PrevValid,
		Target:    cam.Target,
	}
	raw := Measure(z.settings.Pattern, obs, st)

	if dt < 0 || !cam.PrevValid || !st.Valid {
		st.Value = raw
	} else {
		st.Value += Damp(raw-st.Value, z.settings.Damping, dt)
	}
	st.Valid = true

	offset := z.settings.Curve.Evaluate(st.Value)
	cam.Lens.OrthoSize = common.Clamp(cam.Lens.OrthoSize+offset, z.settings.MinSize, z.settings.MaxSize)
}
