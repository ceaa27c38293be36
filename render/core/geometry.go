package core

import "github.com/go-gl/mathgl/mgl32"

// ClipCorners returns the four corners of the instance quad in clip
// space, in triangle-strip order, after rotation, scaling and the
// pixel-to-NDC transform applied by the sprite shader. It exists so
// the vertex math has a CPU-side mirror that can be checked.
func (s SpriteInstance) ClipCorners(resolution mgl32.Vec2) [4]mgl32.Vec2 {
	corners := [4]mgl32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{-0.5, 0.5},
		{0.5, 0.5},
	}
	rot := mgl32.Rotate2D(s.Rotation)
	var out [4]mgl32.Vec2
	for i, c := range corners {
		scaled := mgl32.Vec2{c.X() * s.Size[0], c.Y() * s.Size[1]}
		r := rot.Mul2x1(scaled)
		px := mgl32.Vec2{s.Pos[0] + r.X(), s.Pos[1] + r.Y()}
		out[i] = mgl32.Vec2{
			px.X()/resolution.X()*2 - 1,
			-(px.Y()/resolution.Y()*2 - 1),
		}
	}
	return out
}
