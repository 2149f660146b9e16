package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// debugOverlay is a small anchored panel with live zoom readouts. It uses
// colored nine-slices and the built-in basic font so no theme assets are
// needed.
type debugOverlay struct {
	ui      *ebitenui.UI
	readout *widget.Text
}

func newDebugOverlay() *debugOverlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	title := widget.NewText(
		widget.TextOpts.Text("followzoom", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)
	readout := widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(readout)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &debugOverlay{
		ui:      &ebitenui.UI{Container: root},
		readout: readout,
	}
}

func (o *debugOverlay) refresh(g *Game) {
	if o == nil || o.readout == nil {
		return
	}
	chase := g.cams.Camera(g.chaseCam)
	top := g.cams.Camera(g.topCam)
	if chase == nil || top == nil {
		return
	}
	signal, _ := g.orthoZoom.Signal(g.topCam)
	o.readout.Label = fmt.Sprintf(
		"fov: %6.2f deg (damp %.1fs)\northo: %6.1f wu (damp %.1fs)\nsignal: %7.2f [%s]\nspeed: %6.1f",
		chase.Lens.FOV, g.fovZoom.MaxDampTime(),
		top.Lens.OrthoSize, g.orthoZoom.MaxDampTime(),
		signal, g.orthoCfg.Ortho.Pattern,
		g.target.Velocity().Length(),
	)
	o.ui.Update()
}

func (o *debugOverlay) draw(screen *ebiten.Image) {
	if o == nil || o.ui == nil {
		return
	}
	o.ui.Draw(screen)
}
