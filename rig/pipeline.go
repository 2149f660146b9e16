package rig

// Stage orders the per-frame camera work. Zoom runs after the camera has
// been positioned and before aim/composition so downstream framing sees the
// updated lens.
type Stage int

const (
	StageBody Stage = iota
	StageZoom
	StageAim
	StageFinalize

	stageCount
)

// Proc is one unit of per-camera, per-stage work. The host serializes
// frames, so a Proc is never invoked concurrently for the same camera.
type Proc interface {
	Update(r *Rig, id CameraID, dt float64)
}

// ProcFunc adapts a function to the Proc interface.
type ProcFunc func(r *Rig, id CameraID, dt float64)

func (f ProcFunc) Update(r *Rig, id CameraID, dt float64) {
	f(r, id, dt)
}

// Pipeline runs registered procs stage by stage across all live cameras.
type Pipeline struct {
	procs [stageCount][]Proc
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Attach appends a proc to a stage. Procs within a stage run in attach
// order.
func (p *Pipeline) Attach(stage Stage, proc Proc) {
	if proc == nil || stage < 0 || stage >= stageCount {
		return
	}
	p.procs[stage] = append(p.procs[stage], proc)
}

// Run executes one frame: every stage in order, and within a stage every
// camera in registration order. dt is the elapsed time since the previous
// frame in seconds; a negative dt is forwarded untouched so procs can treat
// it as a discontinuity.
func (p *Pipeline) Run(r *Rig, dt float64) {
	if r == nil {
		return
	}
	for stage := Stage(0); stage < stageCount; stage++ {
		for _, proc := range p.procs[stage] {
			for _, id := range r.Cameras() {
				proc.Update(r, id, dt)
			}
		}
	}
}
