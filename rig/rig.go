package rig

// Releaser is notified when a camera is removed so owners of per-camera
// state can drop it. Zoom controllers implement this.
type Releaser interface {
	Release(id CameraID)
}

type cameraSlot struct {
	gen   generation
	alive bool
	cam   Camera
}

// Rig owns the cameras a host updates each frame. Slots are reused with a
// bumped generation so removed cameras cannot be resurrected through stale
// handles.
type Rig struct {
	slots     []cameraSlot
	free      []cameraIndex
	order     []CameraID
	releasers []Releaser
}

// NewRig creates an empty camera rig.
func NewRig() *Rig {
	return &Rig{}
}

// Add registers a new camera and returns its handle. Slot indices start at 1
// so the zero CameraID stays invalid.
func (r *Rig) Add() CameraID {
	var idx cameraIndex
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, cameraSlot{})
		idx = cameraIndex(len(r.slots))
	}
	slot := &r.slots[idx-1]
	slot.alive = true
	slot.cam = Camera{}
	id := makeCameraID(idx, slot.gen)
	r.order = append(r.order, id)
	return id
}

// Remove destroys a camera, notifies releasers, and recycles the slot.
// Returns false for a stale or unknown handle.
func (r *Rig) Remove(id CameraID) bool {
	slot := r.slot(id)
	if slot == nil {
		return false
	}
	for _, rel := range r.releasers {
		rel.Release(id)
	}
	slot.alive = false
	slot.gen++
	slot.cam = Camera{}
	r.free = append(r.free, id.index())
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Alive reports whether the handle still refers to a registered camera.
func (r *Rig) Alive(id CameraID) bool {
	return r.slot(id) != nil
}

// Camera returns the mutable camera state for a handle, or nil if stale.
func (r *Rig) Camera(id CameraID) *Camera {
	slot := r.slot(id)
	if slot == nil {
		return nil
	}
	return &slot.cam
}

// Cameras returns the live camera handles in registration order.
func (r *Rig) Cameras() []CameraID {
	ids := make([]CameraID, 0, len(r.order))
	return append(ids, r.order...)
}

// OnRelease registers a callback target for camera removal.
func (r *Rig) OnRelease(rel Releaser) {
	if rel == nil {
		return
	}
	r.releasers = append(r.releasers, rel)
}

func (r *Rig) slot(id CameraID) *cameraSlot {
	idx := id.index()
	if idx == 0 || int(idx) > len(r.slots) {
		return nil
	}
	slot := &r.slots[idx-1]
	if !slot.alive || slot.gen != id.generation() {
		return nil
	}
	return slot
}
