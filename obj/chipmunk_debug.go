package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
)

var (
	borderColor = color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xff}

	solidColor      = cp.FColor{R: 0.4, G: 0.7, B: 1, A: 1}
	sensorColor     = cp.FColor{R: 1, G: 0.85, B: 0.2, A: 1}
	playerColor     = cp.FColor{R: 0.3, G: 1, B: 0.4, A: 1}
	projectileColor = cp.FColor{R: 1, G: 0.3, B: 0.2, A: 1}
	bodyColor       = cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1}
)

// DrawFace renders every shape on a face in face-local pixels, plus a
// border, a tick on the face's north edge and the face's name.
func DrawFace(screen *ebiten.Image, face *cube.Face, player *Player) {
	if screen == nil || face == nil {
		return
	}
	w := physics.WorldOf(face)
	size := float32(face.Size)
	vector.StrokeRect(screen, 0, 0, size, size, 2, borderColor, false)
	vector.StrokeLine(screen, size/2, 0, size/2, 12, 3, borderColor, false)
	ebitenutil.DebugPrintAt(screen, w.Name(), 6, 4)

	d := &chipmunkDrawer{screen: screen}
	if player != nil && player.Alive() && player.Mover().Face() == face {
		d.player = player.Body().CP()
	}
	cp.DrawSpace(w.Space(), d)
}

// chipmunkDrawer strokes shapes in the color ShapeColor picks for them.
// Only shapes are requested, so constraints and collision points are
// never drawn.
type chipmunkDrawer struct {
	screen *ebiten.Image
	player *cp.Body
}

func (d *chipmunkDrawer) stroke(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, rgba(c), false)
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, _, fill cp.FColor, _ interface{}) {
	vector.StrokeCircle(d.screen, float32(pos.X), float32(pos.Y), float32(radius), 1, rgba(fill), false)
	d.stroke(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), fill)
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	d.stroke(a, b, fill)
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	for i := 0; i < count; i++ {
		d.stroke(verts[i], verts[(i+1)%count], fill)
	}
}

func (d *chipmunkDrawer) DrawSegment(cp.Vector, cp.Vector, cp.FColor, interface{}) {}

func (d *chipmunkDrawer) DrawDot(float64, cp.Vector, cp.FColor, interface{}) {}

func (d *chipmunkDrawer) Flags() uint { return cp.DRAW_SHAPES }

func (d *chipmunkDrawer) OutlineColor() cp.FColor { return bodyColor }

func (d *chipmunkDrawer) ConstraintColor() cp.FColor { return cp.FColor{} }

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor { return cp.FColor{} }

func (d *chipmunkDrawer) Data() interface{} { return nil }

// ShapeColor sorts shapes into sensors, static geometry, the player,
// projectiles and every other body.
func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	body := shape.Body()
	switch {
	case shape.Sensor():
		return sensorColor
	case body == nil || body.GetType() == cp.BODY_STATIC:
		return solidColor
	case body == d.player:
		return playerColor
	}
	if b, ok := body.UserData.(*physics.Body); ok && b.Spec().Projectile {
		return projectileColor
	}
	return bodyColor
}

func rgba(c cp.FColor) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * 0xff)),
		G: uint8(math.Round(float64(c.G) * 0xff)),
		B: uint8(math.Round(float64(c.B) * 0xff)),
		A: uint8(math.Round(float64(c.A) * 0xff)),
	}
}
