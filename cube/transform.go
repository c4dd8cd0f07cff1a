package cube

import "github.com/go-gl/mathgl/mgl64"

// ToFaceLocal2D projects a cube-local point onto the face and returns it in
// the face's physics coordinates, where (0,0) is the north-west corner and
// (Size,Size) the south-east corner.
func (f *Face) ToFaceLocal2D(p mgl64.Vec3) Vec2 {
	q := f.toLocal.Mul3x1(p)
	half := f.Size / 2
	return Vec2{
		X: (q.X() + 1) * half,
		Y: (-q.Y() + 1) * half,
	}
}

// ToCube3D lifts a point in the face's physics coordinates onto the face's
// plane in the cube embedding.
func (f *Face) ToCube3D(pt Vec2) mgl64.Vec3 {
	half := f.Size / 2
	x := pt.X/half - 1
	y := -(pt.Y/half - 1)
	v := f.toCube.Mul3x1(mgl64.Vec3{x, y, 0})
	// Drop whatever drifted off the plane so the normal component is exact.
	v = v.Sub(f.Normal.Mul(v.Dot(f.Normal)))
	return v.Add(f.Normal)
}

// orient fixes the face's Offset, its edge vectors and the matrices between
// cube space and the canonical +Z view. It reports false when Up is not an
// in-plane axis.
func (f *Face) orient() bool {
	canon := canonicalRotation(f.Normal)
	found := false
	for _, d := range Directions {
		turn := quarterTurn(f.Normal, -int(d))
		f.edges[d] = turn.Mul3x1(f.Up)
		if !found && roundVec(canon.Mul3x1(f.edges[d])) == AxisY {
			f.Offset = d
			f.toLocal = canon.Mul3(turn)
			f.toCube = f.toLocal.Transpose()
			found = true
		}
	}
	return found
}
