package rig

import (
	"strconv"

	"github.com/jakecoffman/cp"
)

// CameraID is a generational handle to a camera registered on a Rig. Stale
// handles (kept after Remove) never resolve to a reused slot.
type CameraID uint64

type cameraIndex uint32
type generation uint32

const cameraIndexBits = 32

func makeCameraID(idx cameraIndex, gen generation) CameraID {
	return CameraID(uint64(gen)<<cameraIndexBits | uint64(idx))
}

func (id CameraID) index() cameraIndex {
	return cameraIndex(uint32(id))
}

func (id CameraID) generation() generation {
	return generation(uint32(uint64(id) >> cameraIndexBits))
}

func (id CameraID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id CameraID) Valid() bool {
	return id > 0
}

// LensState is the output surface a zoom controller writes into and the host
// consumes after the zoom stage has run.
type LensState struct {
	// FOV is the vertical field of view in degrees (perspective cameras).
	FOV float64
	// OrthoSize is the orthographic half-height in world units.
	OrthoSize float64
}

// Camera is the per-frame camera state the host keeps current. Position and
// LookAt are world-space; Target optionally binds a physics body whose
// velocity can drive motion-based zoom patterns.
type Camera struct {
	Position cp.Vector
	LookAt   cp.Vector
	Target   *cp.Body
	Lens     LensState

	// PrevValid is false when the previous frame's state cannot be trusted
	// (first live frame, teleport, scene swap). Controllers snap instead of
	// damping while it is false.
	PrevValid bool
}
