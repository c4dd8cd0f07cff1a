package cube

// View is the camera-facing face and which of its directions is drawn at the
// top of the screen. It shares the transition algebra with Mover but never
// touches physics.
type View struct {
	Face *Face
	Up   Direction
}

// NewView starts the camera on face with its own north on top.
func NewView(face *Face) *View {
	return &View{Face: face, Up: North}
}

// RotateCW spins the cube clockwise on screen, keeping the same face.
func (v *View) RotateCW() {
	v.Up = v.Up.CCW()
}

// RotateCCW spins the cube counter-clockwise on screen.
func (v *View) RotateCCW() {
	v.Up = v.Up.CW()
}

// RotateToward brings the face lying in screen direction screenDir to the
// front.
func (v *View) RotateToward(screenDir Direction) {
	v.cross(v.ScreenToFace(screenDir))
}

// RotateToFace brings an adjacent face to the front. It reports false and
// leaves the view unchanged when target does not border the current face.
func (v *View) RotateToFace(target *Face) bool {
	if target == v.Face {
		return true
	}
	d, ok := FaceAdjacency(v.Face, target)
	if !ok {
		return false
	}
	v.cross(d)
	return true
}

func (v *View) cross(d Direction) {
	next := v.Face.AdjacentFace(d)
	back := next.BackwardsDirectionFrom(v.Face)
	v.Up = NextUp(v.Up, d, back)
	v.Face = next
}

// ScreenToFace converts a direction on screen into the matching direction
// on the current face.
func (v *View) ScreenToFace(screenDir Direction) Direction {
	return v.Up.Rotate(int(screenDir))
}
