package main

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// motionScript drives the demo target along a scripted path. The script sees
// __t (seconds since start) and reports a velocity through out_vx/out_vy.
type motionScript struct {
	compiled *tengo.Compiled
}

func newMotionScript(src []byte) (*motionScript, error) {
	script := tengo.NewScript(src)
	if err := script.Add("__t", 0.0); err != nil {
		return nil, fmt.Errorf("script: add __t: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &motionScript{compiled: compiled}, nil
}

func (m *motionScript) velocity(t float64) (cp.Vector, error) {
	if m == nil || m.compiled == nil {
		return cp.Vector{}, fmt.Errorf("script: nil runtime")
	}
	if err := m.compiled.Set("__t", t); err != nil {
		return cp.Vector{}, err
	}
	if err := m.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{
		X: m.compiled.Get("out_vx").Float(),
		Y: m.compiled.Get("out_vy").Float(),
	}, nil
}
