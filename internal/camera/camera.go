// Package camera holds the pinhole camera used by the GPU preview.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Eye, Target, Up mgl32.Vec3
	// Fovy is the vertical field of view in degrees.
	Fovy float32
}

// Fit places the camera on the +Z side of the box so that the whole box is
// in view, looking at its center.
func Fit(lo, hi mgl32.Vec3, fovy float32) Camera {
	center := lo.Add(hi).Mul(0.5)
	radius := hi.Sub(lo).Len() * 0.5
	if radius == 0 {
		radius = 1
	}
	half := float64(mgl32.DegToRad(fovy)) * 0.5
	// 5% padding so nothing touches the border
	dist := radius / float32(math.Sin(half)) * 1.05
	return Camera{
		Eye:    center.Add(mgl32.Vec3{0, 0, dist}),
		Target: center,
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   fovy,
	}
}

// Basis returns the normalized forward, right and up vectors.
func (c Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.Target.Sub(c.Eye).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// TanHalfFovy is the scale the compute shader applies to screen space
// offsets.
func (c Camera) TanHalfFovy() float32 {
	return float32(math.Tan(float64(mgl32.DegToRad(c.Fovy)) * 0.5))
}

// Move translates eye and target together, along the view direction by
// forward and sideways by strafe.
func (c *Camera) Move(forward, strafe float32) {
	f, r, _ := c.Basis()
	delta := f.Mul(forward).Add(r.Mul(strafe))
	c.Eye = c.Eye.Add(delta)
	c.Target = c.Target.Add(delta)
}

func (c Camera) Distance() float32 {
	return c.Target.Sub(c.Eye).Len()
}
