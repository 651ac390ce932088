package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30}).Mul(Scale(Vec3{2, 2, 2}))
	got := m.TransformVector(Vec3{1, 2, 3})

	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformVector: got %v, want %v", got, want)
	}
}

func TestTRSInverse(t *testing.T) {
	m := TRS(Vec3{3, -2, 7}, QuatFromEuler(Vec3{0, 45, 10}), Vec3{2, 1, 0.5})
	p := Vec3{1, 1, 1}

	back := m.Inverse().TransformPoint(m.TransformPoint(p))
	if !back.ApproxEqual(p, 0.001) {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(Vec3{0, 1, 1}).Inverse(); got != Identity() {
		t.Errorf("singular matrix should invert to identity, got %v", got)
	}
}
