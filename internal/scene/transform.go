package scene

import "github.com/go-gl/mathgl/mgl32"

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Transform is a node's placement relative to its parent. Euler holds the
// rotation in degrees, applied Z first, then X, then Y.
type Transform struct {
	Position mgl32.Vec3
	Euler    mgl32.Vec3
	Scale    mgl32.Vec3
}

// IdentityTransform places a node at its parent's origin with no rotation and
// unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Rotation converts the Euler angles into a quaternion.
func (t Transform) Rotation() mgl32.Quat {
	return EulerToQuat(t.Euler)
}

// Matrix returns translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	m = m.Mul4(t.Rotation().Mat4())
	return m.Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// SetUniformScale sets all three scale axes to s.
func (t *Transform) SetUniformScale(s float32) {
	t.Scale = mgl32.Vec3{s, s, s}
}

// EulerToQuat builds the rotation for Euler degrees in Z, X, Y order.
func EulerToQuat(deg mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(deg[0]), axisX)
	qy := mgl32.QuatRotate(mgl32.DegToRad(deg[1]), axisY)
	qz := mgl32.QuatRotate(mgl32.DegToRad(deg[2]), axisZ)
	return qy.Mul(qx).Mul(qz)
}
