package lens

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/followzoom/rig"
)

// State is the persistent per-camera memory a controller keeps between
// frames: the previous damped value plus the raw geometry needed by the
// delta-style patterns. Valid is false until the first completed update, and
// again after a reset.
type State struct {
	Value    float64
	Distance float64
	LookAt   cp.Vector
	Valid    bool
}

// stateTable maps camera handles to their private State. Entries are created
// lazily on first use and dropped when the rig releases the camera, so state
// never leaks across cameras or outlives one.
type stateTable struct {
	states map[rig.CameraID]*State
}

func (t *stateTable) get(id rig.CameraID) *State {
	if t.states == nil {
		t.states = make(map[rig.CameraID]*State)
	}
	st, ok := t.states[id]
	if !ok {
		st = &State{}
		t.states[id] = st
	}
	return st
}

func (t *stateTable) peek(id rig.CameraID) (*State, bool) {
	st, ok := t.states[id]
	return st, ok
}

func (t *stateTable) release(id rig.CameraID) {
	delete(t.states, id)
}
