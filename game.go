package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/milk9111/followzoom/common"
	"github.com/milk9111/followzoom/config"
	"github.com/milk9111/followzoom/gizmo"
	"github.com/milk9111/followzoom/lens"
	"github.com/milk9111/followzoom/rig"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game hosts two cameras on one rig: a perspective chase camera driven by
// FOVZoom and a top-down orthographic camera driven by OrthoZoom. Both track
// the same scripted physics body, which makes per-camera state isolation
// visible live.
type Game struct {
	elapsed       float64
	paused        bool
	resumePending bool
	debug         bool
	clipboardOK   bool

	space  *cp.Space
	target *cp.Body
	motion *motionScript

	cams     *rig.Rig
	pipeline *rig.Pipeline
	chaseCam rig.CameraID
	topCam   rig.CameraID

	fovZoom   *lens.FOVZoom
	orthoZoom *lens.OrthoZoom
	fovCfg    *config.Settings
	orthoCfg  *config.Settings

	watcher *config.Watcher
	overlay *debugOverlay
}

func NewGame(fovSpec, orthoSpec string, debug, clipboardOK bool) (*Game, error) {
	fovCfg, err := config.LoadZoomSpec(fovSpec)
	if err != nil {
		return nil, err
	}
	if fovCfg.Variant != config.VariantFOV {
		return nil, fmt.Errorf("%s: expected a fov spec", fovSpec)
	}
	orthoCfg, err := config.LoadZoomSpec(orthoSpec)
	if err != nil {
		return nil, err
	}
	if orthoCfg.Variant != config.VariantOrtho {
		return nil, fmt.Errorf("%s: expected an ortho spec", orthoSpec)
	}

	fovZoom, err := lens.NewFOVZoom(fovCfg.FOV)
	if err != nil {
		return nil, err
	}
	orthoZoom, err := lens.NewOrthoZoom(orthoCfg.Ortho)
	if err != nil {
		return nil, err
	}

	src, err := loadScript("orbit.tengo")
	if err != nil {
		return nil, err
	}
	motion, err := newMotionScript(src)
	if err != nil {
		return nil, err
	}

	space := cp.NewSpace()
	target := space.AddBody(cp.NewKinematicBody())
	target.SetPosition(cp.Vector{X: baseWidth / 2, Y: baseHeight / 2})
	space.AddShape(cp.NewCircle(target, 12, cp.Vector{}))

	g := &Game{
		debug:       debug,
		clipboardOK: clipboardOK,
		space:       space,
		target:      target,
		motion:      motion,
		cams:        rig.NewRig(),
		pipeline:    rig.NewPipeline(),
		fovZoom:     fovZoom,
		orthoZoom:   orthoZoom,
		fovCfg:      fovCfg,
		orthoCfg:    orthoCfg,
		overlay:     newDebugOverlay(),
	}

	g.cams.OnRelease(fovZoom)
	g.cams.OnRelease(orthoZoom)
	g.chaseCam = g.cams.Add()
	g.topCam = g.cams.Add()

	chase := g.cams.Camera(g.chaseCam)
	chase.Position = cp.Vector{X: 90, Y: baseHeight / 2}
	chase.Target = target
	top := g.cams.Camera(g.topCam)
	top.Position = cp.Vector{X: baseWidth / 2, Y: baseHeight / 2}
	top.Target = target
	top.Lens.OrthoSize = 180

	g.pipeline.Attach(rig.StageBody, rig.ProcFunc(g.trackTarget))
	g.pipeline.Attach(rig.StageZoom, fovZoom)
	g.pipeline.Attach(rig.StageZoom, orthoZoom)

	if watcher, err := config.NewWatcher("config"); err != nil {
		log.Printf("config watcher unavailable: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

// trackTarget is the body-stage proc: it refreshes every camera's look-at
// point before the zoom stage runs.
func (g *Game) trackTarget(r *rig.Rig, id rig.CameraID, dt float64) {
	cam := r.Camera(id)
	if cam == nil {
		return
	}
	cam.LookAt = g.target.Position()
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			// The frame after a pause carries a negative delta so the
			// controllers snap instead of damping across the gap.
			g.resumePending = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySpecs()
	}

	if g.paused {
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt

	vel, err := g.motion.velocity(g.elapsed)
	if err != nil {
		log.Printf("motion script: %v", err)
	} else {
		g.target.SetVelocity(vel.X, vel.Y)
	}
	g.space.Step(dt)

	frameDt := dt
	if g.resumePending {
		frameDt = -1
		g.resumePending = false
	}
	g.pipeline.Run(g.cams, frameDt)
	for _, id := range g.cams.Cameras() {
		g.cams.Camera(id).PrevValid = true
	}

	if g.debug {
		g.overlay.refresh(g)
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config changed: %s", path)
			g.reloadSpecs()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

// reloadSpecs revalidates the authored settings and applies them without
// dropping per-camera state. A bad edit is rejected and the old settings
// stay live.
func (g *Game) reloadSpecs() {
	if cfg, err := config.LoadZoomSpec("zoom_fov.yaml"); err != nil {
		log.Printf("reload fov spec: %v", err)
	} else if cfg.Variant != config.VariantFOV {
		log.Printf("reload fov spec: wrong variant %v", cfg.Variant)
	} else if err := g.fovZoom.Configure(cfg.FOV); err != nil {
		log.Printf("reload fov spec: %v", err)
	} else {
		g.fovCfg = cfg
	}

	if cfg, err := config.LoadZoomSpec("zoom_ortho.yaml"); err != nil {
		log.Printf("reload ortho spec: %v", err)
	} else if cfg.Variant != config.VariantOrtho {
		log.Printf("reload ortho spec: wrong variant %v", cfg.Variant)
	} else if err := g.orthoZoom.Configure(cfg.Ortho); err != nil {
		log.Printf("reload ortho spec: %v", err)
	} else {
		g.orthoCfg = cfg
	}
}

func (g *Game) copySpecs() {
	if !g.clipboardOK {
		log.Printf("clipboard unavailable")
		return
	}
	data, err := g.orthoCfg.Spec().Marshal()
	if err != nil {
		log.Printf("copy spec: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("copied active ortho spec to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff})

	pos := g.target.Position()
	ebitenutil.DrawCircle(screen, pos.X, pos.Y, 12, color.RGBA{R: 0xf5, G: 0xc5, B: 0x42, A: 0xff})

	g.drawOrthoView(screen)
	g.drawChaseView(screen)

	if g.debug {
		g.drawGizmos(screen)
		g.overlay.draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  [space] pause  [tab] debug  [c] copy spec", ebiten.ActualFPS()))
}

// drawOrthoView outlines what the top-down camera frames: a 16:9 box whose
// half-height is the controlled orthographic size.
func (g *Game) drawOrthoView(screen *ebiten.Image) {
	cam := g.cams.Camera(g.topCam)
	if cam == nil {
		return
	}
	halfH := cam.Lens.OrthoSize
	halfW := halfH * 16.0 / 9.0
	c := color.RGBA{R: 0x4d, G: 0x9d, B: 0xe0, A: 0xff}
	x0, y0 := cam.Position.X-halfW, cam.Position.Y-halfH
	x1, y1 := cam.Position.X+halfW, cam.Position.Y+halfH
	ebitenutil.DrawLine(screen, x0, y0, x1, y0, c)
	ebitenutil.DrawLine(screen, x1, y0, x1, y1, c)
	ebitenutil.DrawLine(screen, x1, y1, x0, y1, c)
	ebitenutil.DrawLine(screen, x0, y1, x0, y0, c)
}

// drawChaseView draws the chase camera's view cone at its controlled field
// of view.
func (g *Game) drawChaseView(screen *ebiten.Image) {
	cam := g.cams.Camera(g.chaseCam)
	if cam == nil {
		return
	}
	dist := cam.Position.Distance(cam.LookAt)
	if dist < common.Epsilon {
		return
	}
	dir := math.Atan2(cam.LookAt.Y-cam.Position.Y, cam.LookAt.X-cam.Position.X)
	half := common.Rad(cam.Lens.FOV) / 2
	c := color.RGBA{R: 0x7d, G: 0xce, B: 0x82, A: 0xff}
	for _, a := range []float64{dir - half, dir + half} {
		ebitenutil.DrawLine(screen, cam.Position.X, cam.Position.Y,
			cam.Position.X+math.Cos(a)*dist, cam.Position.Y+math.Sin(a)*dist, c)
	}
}

func (g *Game) drawGizmos(screen *ebiten.Image) {
	signal, _ := g.orthoZoom.Signal(g.topCam)
	rect := image.Rect(20, baseHeight-180, 320, baseHeight-40)
	gizmo.DrawCurve(screen, g.orthoCfg.Ortho.Curve, signal, rect, g.orthoCfg.Colors)

	if chase := g.cams.Camera(g.chaseCam); chase != nil {
		gizmo.DrawFraming(screen, chase.Position, chase.LookAt, g.fovCfg.FOV.Width, g.fovCfg.Colors[0])
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
