// Package gizmo draws debug overlays for zoom controllers. Nothing here
// feeds back into the lens computation.
package gizmo

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/followzoom/common"
	"github.com/milk9111/followzoom/lens"
)

// DrawCurve plots an authored curve inside rect with a vertical marker at
// the current input. The stroke blends from colors[0] at the curve's low end
// to colors[1] at its high end.
func DrawCurve(dst *ebiten.Image, curve lens.Curve, input float64, rect image.Rectangle, colors [2]color.RGBA) {
	if dst == nil || len(curve) == 0 || rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}

	inMin, inMax := curve[0].In, curve[len(curve)-1].In
	outMin, outMax := curve[0].Out, curve[0].Out
	for _, bp := range curve {
		if bp.Out < outMin {
			outMin = bp.Out
		}
		if bp.Out > outMax {
			outMax = bp.Out
		}
	}
	inSpan := inMax - inMin
	outSpan := outMax - outMin
	if inSpan <= 0 {
		inSpan = 1
	}
	if outSpan <= 0 {
		outSpan = 1
	}

	toScreen := func(bp lens.Breakpoint) (float64, float64) {
		x := float64(rect.Min.X) + (bp.In-inMin)/inSpan*float64(rect.Dx())
		y := float64(rect.Max.Y) - (bp.Out-outMin)/outSpan*float64(rect.Dy())
		return x, y
	}

	border := color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	ebitenutil.DrawLine(dst, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Min.Y), border)
	ebitenutil.DrawLine(dst, float64(rect.Min.X), float64(rect.Max.Y), float64(rect.Max.X), float64(rect.Max.Y), border)
	ebitenutil.DrawLine(dst, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Min.X), float64(rect.Max.Y), border)
	ebitenutil.DrawLine(dst, float64(rect.Max.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y), border)

	for i := 1; i < len(curve); i++ {
		x0, y0 := toScreen(curve[i-1])
		x1, y1 := toScreen(curve[i])
		t := (curve[i].In - inMin) / inSpan
		ebitenutil.DrawLine(dst, x0, y0, x1, y1, blend(colors[0], colors[1], t))
	}

	t := common.Clamp((input-inMin)/inSpan, 0, 1)
	markerX := float64(rect.Min.X) + t*float64(rect.Dx())
	ebitenutil.DrawLine(dst, markerX, float64(rect.Min.Y), markerX, float64(rect.Max.Y), blend(colors[0], colors[1], t))
}

// DrawFraming outlines the framed width around the look-at point and a line
// back to the camera position, in screen space.
func DrawFraming(dst *ebiten.Image, camPos, lookAt cp.Vector, width float64, c color.RGBA) {
	if dst == nil || width <= 0 {
		return
	}
	half := width / 2
	left := lookAt.X - half
	right := lookAt.X + half
	top := lookAt.Y - half
	bottom := lookAt.Y + half

	ebitenutil.DrawLine(dst, left, top, right, top, c)
	ebitenutil.DrawLine(dst, right, top, right, bottom, c)
	ebitenutil.DrawLine(dst, right, bottom, left, bottom, c)
	ebitenutil.DrawLine(dst, left, bottom, left, top, c)
	ebitenutil.DrawLine(dst, camPos.X, camPos.Y, lookAt.X, lookAt.Y, c)
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	t = common.Clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(common.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(common.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(common.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(common.Lerp(float64(a.A), float64(b.A), t)),
	}
}
