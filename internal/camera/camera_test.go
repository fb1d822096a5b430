package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFit(t *testing.T) {
	c := Fit(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, 60)
	if c.Target != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Target = %v", c.Target)
	}
	// radius sqrt(3), sin(30deg) = 0.5
	want := float32(2 * 1.7320508 * 1.05)
	if !mgl32.FloatEqualThreshold(c.Eye.Z(), want, 1e-4) {
		t.Errorf("Eye = %v, want z %v", c.Eye, want)
	}
}

func TestFitDegenerate(t *testing.T) {
	p := mgl32.Vec3{3, 3, 3}
	c := Fit(p, p, 90)
	if c.Distance() <= 0 {
		t.Fatalf("camera sits on the target: %+v", c)
	}
}

func TestBasisAndMove(t *testing.T) {
	c := Camera{Eye: mgl32.Vec3{0, 0, 5}, Target: mgl32.Vec3{}, Up: mgl32.Vec3{0, 1, 0}, Fovy: 90}
	f, r, u := c.Basis()
	if !f.ApproxEqual(mgl32.Vec3{0, 0, -1}) || !r.ApproxEqual(mgl32.Vec3{1, 0, 0}) || !u.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("basis = %v %v %v", f, r, u)
	}
	if !mgl32.FloatEqual(c.TanHalfFovy(), 1) {
		t.Errorf("TanHalfFovy = %v", c.TanHalfFovy())
	}

	c.Move(2, -1)
	if !c.Eye.ApproxEqual(mgl32.Vec3{-1, 0, 3}) || !c.Target.ApproxEqual(mgl32.Vec3{-1, 0, -2}) {
		t.Errorf("after Move: eye %v target %v", c.Eye, c.Target)
	}
	if !mgl32.FloatEqual(c.Distance(), 5) {
		t.Errorf("Distance = %v", c.Distance())
	}
}
