package lens

import (
	"fmt"
	"math"

	"github.com/milk9111/followzoom/common"
	"github.com/milk9111/followzoom/rig"
)

// Field-of-view and damping limits enforced on every settings edit.
const (
	MinFOVLimit = 1.0
	MaxFOVLimit = 179.0
	MaxDamping  = 20.0
)

// FOVSettings configures a FOVZoom controller.
type FOVSettings struct {
	// Width is the world-space width that should stay visible around the
	// look-at point.
	Width float64
	// Damping is the smoothing time constant in seconds. Zero disables
	// smoothing.
	Damping float64
	// MinFOV and MaxFOV bound the output field of view in degrees.
	MinFOV float64
	MaxFOV float64
}

// Validate clamps the numeric fields into their legal ranges and rejects an
// inverted FOV range. Called on every edit, never in the per-frame path.
func (s *FOVSettings) Validate() error {
	s.Width = math.Max(s.Width, 0)
	s.Damping = common.Clamp(s.Damping, 0, MaxDamping)
	s.MinFOV = common.Clamp(s.MinFOV, MinFOVLimit, MaxFOVLimit)
	s.MaxFOV = common.Clamp(s.MaxFOV, MinFOVLimit, MaxFOVLimit)
	if s.MinFOV > s.MaxFOV {
		return fmt.Errorf("lens: fov bounds inverted (min %g > max %g)", s.MinFOV, s.MaxFOV)
	}
	return nil
}

// FOVZoom keeps the target at a roughly constant on-screen size by adjusting
// a perspective camera's field of view. The width it frames is damped, not
// the angle, so the response stays uniform across distances.
type FOVZoom struct {
	settings FOVSettings
	states   stateTable
}

// NewFOVZoom creates a controller with validated settings.
func NewFOVZoom(s FOVSettings) (*FOVZoom, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &FOVZoom{settings: s}, nil
}

// Configure replaces the settings, revalidating them. Per-camera state is
// kept so a live edit doesn't cause a snap.
func (z *FOVZoom) Configure(s FOVSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	z.settings = s
	return nil
}

// Settings returns the active settings.
func (z *FOVZoom) Settings() FOVSettings {
	return z.settings
}

// MaxDampTime reports the configured damping time constant so the host can
// size its look-ahead buffers.
func (z *FOVZoom) MaxDampTime() float64 {
	return z.settings.Damping
}

// Release drops the per-camera state for a removed camera.
func (z *FOVZoom) Release(id rig.CameraID) {
	z.states.release(id)
}

// Update runs the once-per-frame zoom step for one camera. Attach at
// rig.StageZoom.
func (z *FOVZoom) Update(r *rig.Rig, id rig.CameraID, dt float64) {
	cam := r.Camera(id)
	if cam == nil {
		return
	}
	dist := cam.Position.Distance(cam.LookAt)
	if dist < common.Epsilon {
		// The angle is undefined on top of the target; hold the previous
		// output and keep the stale state for the next real frame.
		return
	}
	st := z.states.get(id)

	// Clamp the desired width to what [MinFOV, MaxFOV] can frame at this
	// distance, so damping never chases an unreachable target.
	minW := 2 * dist * math.Tan(common.Rad(z.settings.MinFOV)/2)
	maxW := 2 * dist * math.Tan(common.Rad(z.settings.MaxFOV)/2)
	want := common.Clamp(z.settings.Width, minW, maxW)

	if dt < 0 || !cam.PrevValid || !st.Valid {
		st.Value = want
	} else {
		st.Value += Damp(want-st.Value, z.settings.Damping, dt)
	}
	st.Distance = dist
	st.Valid = true

	fov := common.Deg(2 * math.Atan(st.Value/(2*dist)))
	cam.Lens.FOV = common.Clamp(fov, z.settings.MinFOV, z.settings.MaxFOV)
}
