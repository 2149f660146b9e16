package config

import (
	"strings"
	"testing"

	"github.com/milk9111/followzoom/lens"
)

func TestParseZoomSpecFOV(t *testing.T) {
	data := []byte(`
variant: fov
width: 2
damping: 1.5
min: 6
max: 8
debug: true
`)
	settings, err := ParseZoomSpec(data)
	if err != nil {
		t.Fatalf("ParseZoomSpec: %v", err)
	}
	if settings.Variant != VariantFOV {
		t.Fatalf("expected fov variant, got %v", settings.Variant)
	}
	if !settings.Debug {
		t.Fatalf("expected debug enabled")
	}
	want := lens.FOVSettings{Width: 2, Damping: 1.5, MinFOV: 6, MaxFOV: 8}
	if settings.FOV != want {
		t.Fatalf("unexpected fov settings: %+v", settings.FOV)
	}
}

func TestParseZoomSpecOrtho(t *testing.T) {
	data := []byte(`
variant: ortho
pattern: distance_delta
damping: 0.5
min: 2
max: 40
curve:
  - { in: 2, out: 2 }
  - { in: 0, out: -1 }
`)
	settings, err := ParseZoomSpec(data)
	if err != nil {
		t.Fatalf("ParseZoomSpec: %v", err)
	}
	if settings.Variant != VariantOrtho {
		t.Fatalf("expected ortho variant, got %v", settings.Variant)
	}
	if settings.Ortho.Pattern != lens.PatternDistanceDelta {
		t.Fatalf("unexpected pattern: %v", settings.Ortho.Pattern)
	}
	// Authored out of order; parsing sorts before validation.
	if got := settings.Ortho.Curve.Evaluate(1); got != 0.5 {
		t.Fatalf("expected curve midpoint 0.5, got %g", got)
	}
}

func TestParseZoomSpecRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "unknown_variant",
			data: "variant: spherical\n",
			want: "unknown zoom variant",
		},
		{
			name: "unknown_pattern",
			data: "variant: ortho\npattern: warp\nmin: 1\nmax: 2\n",
			want: "unknown measurement pattern",
		},
		{
			name: "inverted_fov_bounds",
			data: "variant: fov\nwidth: 1\nmin: 90\nmax: 30\n",
			want: "bounds inverted",
		},
		{
			name: "inverted_ortho_bounds",
			data: "variant: ortho\npattern: distance\nmin: 50\nmax: 2\n",
			want: "bounds inverted",
		},
		{
			name: "bad_gizmo_color",
			data: "variant: fov\nwidth: 1\nmin: 10\nmax: 90\ngizmo_colors: [\"#123456\", \"notacolor\"]\n",
			want: "gizmo color",
		},
		{
			name: "wrong_gizmo_color_count",
			data: "variant: fov\nwidth: 1\nmin: 10\nmax: 90\ngizmo_colors: [\"#123456\"]\n",
			want: "exactly 2",
		},
		{
			name: "not_yaml",
			data: "variant: [unclosed",
			want: "unmarshal",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseZoomSpec([]byte(c.data))
			if err == nil {
				t.Fatalf("expected error containing %q", c.want)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), c.want)
			}
		})
	}
}

func TestSpecRoundTrip(t *testing.T) {
	settings, err := LoadZoomSpec("zoom_ortho.yaml")
	if err != nil {
		t.Fatalf("LoadZoomSpec: %v", err)
	}

	data, err := settings.Spec().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	again, err := ParseZoomSpec(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if again.Variant != settings.Variant {
		t.Fatalf("variant changed across round trip")
	}
	if again.Ortho.Pattern != settings.Ortho.Pattern {
		t.Fatalf("pattern changed across round trip")
	}
	if len(again.Ortho.Curve) != len(settings.Ortho.Curve) {
		t.Fatalf("curve length changed across round trip")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	for _, name := range []string{"zoom_fov.yaml", "zoom_ortho.yaml"} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadZoomSpec(name); err != nil {
				t.Fatalf("embedded default %s should parse: %v", name, err)
			}
		})
	}
}
