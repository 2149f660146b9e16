package config

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/followzoom/lens"
)

// Variant picks which lens scalar a zoom spec controls.
type Variant int

const (
	VariantFOV Variant = iota
	VariantOrtho
)

func (v Variant) String() string {
	switch v {
	case VariantFOV:
		return "fov"
	case VariantOrtho:
		return "ortho"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// CurvePointSpec is one authored breakpoint.
type CurvePointSpec struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// ZoomSpec is the authored form of a zoom controller's configuration.
type ZoomSpec struct {
	Variant string           `yaml:"variant"`
	Pattern string           `yaml:"pattern"`
	Width   float64          `yaml:"width"`
	Damping float64          `yaml:"damping"`
	Min     float64          `yaml:"min"`
	Max     float64          `yaml:"max"`
	Curve   []CurvePointSpec `yaml:"curve"`
	Debug   bool             `yaml:"debug"`
	// GizmoColors are the two CSS colors the debug curve gizmo blends
	// between. Visualization only.
	GizmoColors []string `yaml:"gizmo_colors"`
}

// Settings is a validated zoom configuration ready to hand to a controller.
// Exactly one of FOV/Ortho is meaningful, per Variant.
type Settings struct {
	Variant Variant
	FOV     lens.FOVSettings
	Ortho   lens.OrthoSettings
	Debug   bool
	Colors  [2]color.RGBA
}

var defaultGizmoColors = [2]color.RGBA{
	{G: 0xff, A: 0xff},
	{R: 0xff, A: 0xff},
}

// ParseZoomSpec unmarshals and validates an authored zoom spec. All
// configuration errors surface here, at edit time, so the per-frame path
// never sees an invalid pattern, variant, or curve.
func ParseZoomSpec(data []byte) (*Settings, error) {
	var spec ZoomSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: unmarshal zoom spec: %w", err)
	}
	return spec.Settings()
}

// Settings validates the authored spec and converts it.
func (spec ZoomSpec) Settings() (*Settings, error) {
	out := &Settings{Debug: spec.Debug}

	colors, err := parseGizmoColors(spec.GizmoColors)
	if err != nil {
		return nil, err
	}
	out.Colors = colors

	switch spec.Variant {
	case "fov":
		out.Variant = VariantFOV
		out.FOV = lens.FOVSettings{
			Width:   spec.Width,
			Damping: spec.Damping,
			MinFOV:  spec.Min,
			MaxFOV:  spec.Max,
		}
		if err := out.FOV.Validate(); err != nil {
			return nil, fmt.Errorf("config: zoom spec: %w", err)
		}
	case "ortho":
		out.Variant = VariantOrtho
		pattern, err := lens.ParsePattern(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: zoom spec: %w", err)
		}
		curve := make(lens.Curve, 0, len(spec.Curve))
		for _, p := range spec.Curve {
			curve = append(curve, lens.Breakpoint{In: p.In, Out: p.Out})
		}
		curve.Sort()
		out.Ortho = lens.OrthoSettings{
			Pattern: pattern,
			Curve:   curve,
			Damping: spec.Damping,
			MinSize: spec.Min,
			MaxSize: spec.Max,
		}
		if err := out.Ortho.Validate(); err != nil {
			return nil, fmt.Errorf("config: zoom spec: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unknown zoom variant %q", spec.Variant)
	}

	return out, nil
}

// Spec converts validated settings back to their authored form, e.g. for the
// clipboard export in the demo.
func (s *Settings) Spec() ZoomSpec {
	spec := ZoomSpec{
		Variant: s.Variant.String(),
		Debug:   s.Debug,
	}
	switch s.Variant {
	case VariantFOV:
		spec.Width = s.FOV.Width
		spec.Damping = s.FOV.Damping
		spec.Min = s.FOV.MinFOV
		spec.Max = s.FOV.MaxFOV
	case VariantOrtho:
		spec.Pattern = s.Ortho.Pattern.String()
		spec.Damping = s.Ortho.Damping
		spec.Min = s.Ortho.MinSize
		spec.Max = s.Ortho.MaxSize
		for _, bp := range s.Ortho.Curve {
			spec.Curve = append(spec.Curve, CurvePointSpec{In: bp.In, Out: bp.Out})
		}
	}
	return spec
}

// Marshal renders the authored form as yaml.
func (spec ZoomSpec) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("config: marshal zoom spec: %w", err)
	}
	return data, nil
}

func parseGizmoColors(names []string) ([2]color.RGBA, error) {
	if len(names) == 0 {
		return defaultGizmoColors, nil
	}
	if len(names) != 2 {
		return [2]color.RGBA{}, fmt.Errorf("config: gizmo_colors needs exactly 2 entries, got %d", len(names))
	}
	var out [2]color.RGBA
	for i, name := range names {
		c, err := csscolorparser.Parse(name)
		if err != nil {
			return [2]color.RGBA{}, fmt.Errorf("config: gizmo color %q: %w", name, err)
		}
		r, g, b, a := c.RGBA255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: a}
	}
	return out, nil
}
