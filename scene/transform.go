// Package scene holds the per-frame transform update shared by the cube
// samples and their static geometry.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Per-frame rotation increments in degrees.
const (
	StepX float32 = 1.0
	StepY float32 = 2.0
)

// Rotation is a pair of unbounded rotation angles in degrees.
type Rotation struct {
	X, Y float32
}

// Advance returns the rotation one fixed step later.
func (r Rotation) Advance() Rotation {
	return Rotation{X: r.X + StepX, Y: r.Y + StepY}
}

// AdvanceScaled advances by the fixed step scaled by scale.
func (r Rotation) AdvanceScaled(scale float32) Rotation {
	return Rotation{X: r.X + StepX*scale, Y: r.Y + StepY*scale}
}

// Model returns rotateX(X) * rotateY(Y).
func (r Rotation) Model() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(r.X))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(r.Y))
	return rx.Mul4(ry)
}

// MVP returns viewProj * r.Model().
func MVP(viewProj mgl32.Mat4, r Rotation) mgl32.Mat4 {
	return viewProj.Mul4(r.Model())
}

// Camera holds the fixed projection and view parameters.
type Camera struct {
	FovY   float32 // degrees
	Near   float32
	Far    float32
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// DefaultCamera looks at the origin from slightly above.
var DefaultCamera = Camera{
	FovY:   60,
	Near:   0.01,
	Far:    10,
	Eye:    mgl32.Vec3{0, 1.5, 6},
	Center: mgl32.Vec3{0, 0, 0},
	Up:     mgl32.Vec3{0, 1, 0},
}

// ViewProjection returns projection * view for the given aspect ratio.
func ViewProjection(cam Camera, aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(cam.FovY), aspect, cam.Near, cam.Far)
	view := mgl32.LookAtV(cam.Eye, cam.Center, cam.Up)
	return proj.Mul4(view)
}

// Aspect returns width/height, or 1 for a degenerate size.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
