package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cubescroller/cube"
)

// ViewCommand is a camera request read from the keyboard.
type ViewCommand int

const (
	ViewNone ViewCommand = iota
	ViewRotateCW
	ViewRotateCCW
	// ViewToward brings the face in Input.Toward's screen direction to the
	// front.
	ViewToward
	ViewFollow
)

// Input holds the current keyboard and gamepad state.
type Input struct {
	Intent Intent
	View   ViewCommand
	Toward cube.Direction

	Quit   bool
	Pause  bool
	Reload bool
	Debug  bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices. Left and right always mean the player's own left
// and right, whichever way the view is turned.
func (i *Input) Update() {
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Reload = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	i.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	fire := inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		fire = fire || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	i.Intent = Intent{MoveX: moveX, Jump: jump, Fire: fire}

	i.View = ViewNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		i.View = ViewRotateCW
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		i.View = ViewRotateCCW
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		i.View = ViewFollow
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		i.View, i.Toward = ViewToward, cube.North
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		i.View, i.Toward = ViewToward, cube.East
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		i.View, i.Toward = ViewToward, cube.South
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		i.View, i.Toward = ViewToward, cube.West
	}
}
