package math3d

// Vec4 is a homogeneous 3D point (x, y, z, w).
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Point returns the homogeneous point for v with w = 1.
func Point(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}
