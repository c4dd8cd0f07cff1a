package main

import (
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/cubescroller/common"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/obj"
	"github.com/milk9111/cubescroller/prefabs"
	"github.com/milk9111/cubescroller/system"
	"go.uber.org/zap"
)

// viewTurnRate is the share of the remaining view rotation covered per
// frame.
const viewTurnRate = 0.2

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool
	scale  float64

	input   *obj.Input
	world   *system.World
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	log     *zap.Logger

	faceImage *ebiten.Image
	viewFace  *cube.Face
	viewAngle float64
}

func NewGame(levelName string, debug bool, scale float64, log *zap.Logger) (*Game, error) {
	world, err := system.NewWorld(levelName, log)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		debug: debug,
		scale: scale,
		input: obj.NewInput(),
		world: world,
		log:   log,
	}
	g.pauseUI = NewPauseUI(g)
	g.snapView()
	return g, nil
}

// Watch reloads the world when prefabs under dir change.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(g.log, dir, filepath.Join(dir, "scripts"))
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	if g.input.Quit || g.quit {
		return ebiten.Termination
	}
	if g.input.Pause {
		g.paused = !g.paused
	}
	if g.input.Debug {
		g.debug = !g.debug
	}
	if g.input.Reload {
		g.reload(false)
	}
	g.pollWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.RotateView(g.input.View, g.input.Toward)
	g.world.Update(g.input.Intent)
	g.turnView()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			g.reload(prefabs.IsScript(name))
		case err := <-g.watcher.Errors:
			g.log.Warn("prefab watch error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(scriptsOnly bool) {
	var err error
	if scriptsOnly {
		err = g.world.ReloadScripts()
	} else {
		err = g.world.Reload()
	}
	if err != nil {
		g.log.Warn("reload failed", zap.Bool("scripts_only", scriptsOnly), zap.Error(err))
		return
	}
	g.log.Info("reloaded", zap.Bool("scripts_only", scriptsOnly))
	if !scriptsOnly {
		g.snapView()
	}
}

// targetAngle turns the view's up edge of the face to the top of the screen.
func (g *Game) targetAngle() float64 {
	return -g.world.View.Up.Angle()
}

func (g *Game) snapView() {
	g.viewFace = g.world.View.Face
	g.viewAngle = g.targetAngle()
}

// turnView eases the on-screen rotation after a view turn. Changing face
// snaps, since the picture is of a different face.
func (g *Game) turnView() {
	if g.world.View.Face != g.viewFace {
		g.snapView()
		return
	}
	g.viewAngle = common.LerpAngle(g.viewAngle, g.targetAngle(), viewTurnRate)
}

func (g *Game) Draw(screen *ebiten.Image) {
	face := g.world.View.Face
	size := int(face.Size)
	if g.faceImage == nil || g.faceImage.Bounds().Dx() != size {
		g.faceImage = ebiten.NewImage(size, size)
	}
	g.faceImage.Clear()
	obj.DrawFace(g.faceImage, face, g.world.Player)

	op := &ebiten.DrawImageOptions{}
	half := face.Size / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(g.viewAngle)
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(common.ScreenWidth/2, common.ScreenHeight/2)
	screen.DrawImage(g.faceImage, op)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	w := g.world
	p := w.Player
	return fmt.Sprintf(
		"FPS: %.1f  tick: %d\nview: %s up %s follow %t\nplayer: %s up %s grounded %t\ncube: %v\nobjects: %d  kills: %d",
		ebiten.ActualFPS(), w.Tick,
		w.View.Face.Name, w.View.Up, w.Follow,
		p.Mover().Face().Name, p.Mover().Up(), p.Body().Grounded(),
		p.Mover().CubePosition(),
		len(w.Objects), w.Kills,
	)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
