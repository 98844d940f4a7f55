package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := About(V3(300, 200, 0), RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}
