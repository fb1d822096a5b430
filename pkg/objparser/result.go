package objparser

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Result is a flat triangle list, one entry per face corner in face order.
// Positions and Normals hold 3 floats per corner, TexCoords holds 2.
type Result struct {
	CornerCount uint32
	Positions   []float32
	Normals     []float32
	TexCoords   []float32
}

func (r *Result) Triangles() int { return int(r.CornerCount) / 3 }

func (r *Result) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{r.Positions[3*i], r.Positions[3*i+1], r.Positions[3*i+2]}
}

func (r *Result) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{r.Normals[3*i], r.Normals[3*i+1], r.Normals[3*i+2]}
}

func (r *Result) TexCoord(i int) mgl32.Vec2 {
	return mgl32.Vec2{r.TexCoords[2*i], r.TexCoords[2*i+1]}
}

// Bounds returns the axis aligned box around all positions. Both corners
// are zero for an empty result.
func (r *Result) Bounds() (lo, hi mgl32.Vec3) {
	if r.CornerCount == 0 {
		return
	}
	lo, hi = r.Position(0), r.Position(0)
	for i := 1; i < int(r.CornerCount); i++ {
		p := r.Position(i)
		for k := range p {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// InterleavedStride is the number of floats per corner in Interleaved.
const InterleavedStride = 8

// Interleaved packs position, normal and texture coordinate of each corner
// next to each other, for a single vertex buffer.
func (r *Result) Interleaved() []float32 {
	out := make([]float32, 0, InterleavedStride*int(r.CornerCount))
	for i := 0; i < int(r.CornerCount); i++ {
		out = append(out, r.Positions[3*i:3*i+3]...)
		out = append(out, r.Normals[3*i:3*i+3]...)
		out = append(out, r.TexCoords[2*i:2*i+2]...)
	}
	return out
}

// Clone returns a deep copy that shares no buffers with r.
func (r *Result) Clone() (*Result, error) {
	c := new(Result)
	if err := copier.CopyWithOption(c, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return c, nil
}
