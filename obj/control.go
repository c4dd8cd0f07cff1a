package obj

import (
	"github.com/milk9111/cubescroller/common"
	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/physics"
)

// walker steers a body in its own frame: "right" is one quarter turn
// clockwise from the mover's up, whatever face it stands on.
type walker struct {
	moveSpeed  float64
	jumpSpeed  float64
	airControl float64
}

// frame returns the unit vectors pointing right and up for a mover.
func frame(up cube.Direction) (right, upv cube.Vec2) {
	return up.CW().Vector(), up.Vector()
}

// drive sets the body's velocity along its right axis toward moveX times
// the move speed and, when jump is set and the body is grounded, launches
// it along up. It reports whether a jump happened.
func (w walker) drive(body *physics.Body, up cube.Direction, moveX float64, jump bool) bool {
	right, upv := frame(up)
	v := body.Velocity()
	along := v.Dot(right)
	rise := v.Dot(upv)

	target := common.Sign(moveX) * w.moveSpeed
	if body.Grounded() || w.airControl <= 0 {
		along = target
	} else {
		along = common.Lerp(along, target, w.airControl)
	}

	jumped := false
	if jump && body.Grounded() {
		rise = w.jumpSpeed
		jumped = true
	}

	body.SetVelocity(right.Scale(along).Add(upv.Scale(rise)))
	return jumped
}

// applyGravity points the mover's face gravity at its feet.
func applyGravity(m *cube.Mover) {
	physics.WorldOf(m.Face()).SetGravityDirection(m.Up().Invert())
}
