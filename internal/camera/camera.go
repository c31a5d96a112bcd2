package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World conventions used by the whole module: metres, seconds, radians.
// Yaw 0 faces +Z, +Y is up, the basis is right-handed.
const (
	MinFovDegrees     = 30.0
	MaxFovDegrees     = 90.0
	DefaultFovDegrees = 60.0
)

// Basis is the orthonormal camera frame in world space.
type Basis struct {
	Forward rl.Vector3
	Right   rl.Vector3
	Up      rl.Vector3
}

// Camera is the committed world-space pose the rest of the engine reads.
// Position and orientation are written through the follow update each frame;
// FOV goes through the clamped setters so it always stays in
// [MinFovDegrees, MaxFovDegrees].
type Camera struct {
	Position rl.Vector3
	Pitch    float32 // radians
	Yaw      float32 // radians, wrapped to (-pi, pi]

	fov       float32 // degrees
	fovTarget float32 // degrees
}

func New() *Camera {
	return &Camera{
		fov:       DefaultFovDegrees,
		fovTarget: DefaultFovDegrees,
	}
}

func NewAt(pos rl.Vector3, pitch, yaw, fovDegrees float32) *Camera {
	fov := clampFov(fovDegrees)
	return &Camera{
		Position:  pos,
		Pitch:     pitch,
		Yaw:       wrapAngle(yaw),
		fov:       fov,
		fovTarget: fov,
	}
}

func (c *Camera) SetPosition(pos rl.Vector3) {
	c.Position = pos
}

// MoveTo is an instant move, identical to SetPosition. It exists so call
// sites can distinguish a deliberate cut from the per-frame write.
func (c *Camera) MoveTo(pos rl.Vector3) {
	c.Position = pos
}

// LerpTo moves the camera toward target by alpha in [0,1], where 1 is instant.
func (c *Camera) LerpTo(target rl.Vector3, alpha float32) {
	c.Position.X += (target.X - c.Position.X) * alpha
	c.Position.Y += (target.Y - c.Position.Y) * alpha
	c.Position.Z += (target.Z - c.Position.Z) * alpha
}

func (c *Camera) SetOrientation(pitch, yaw float32) {
	c.Pitch = pitch
	c.Yaw = wrapAngle(yaw)
}

// SetFov sets both the current and target FOV, clamped.
func (c *Camera) SetFov(fovDegrees float32) {
	c.fov = clampFov(fovDegrees)
	c.fovTarget = c.fov
}

func (c *Camera) SetFovTarget(fovDegrees float32) {
	c.fovTarget = clampFov(fovDegrees)
}

func (c *Camera) Fov() float32       { return c.fov }
func (c *Camera) FovTarget() float32 { return c.fovTarget }

// UpdateFov eases the current FOV toward the target, frame-rate independent.
func (c *Camera) UpdateFov(dt float32) {
	if dt <= 0 {
		return
	}
	const speed = 6.0
	if speed*dt > 50.0 {
		dt = 50.0 / speed
	}
	alpha := float32(1.0 - math.Exp(float64(-speed*dt)))
	c.fovTarget = clampFov(c.fovTarget)
	newFov := c.fov + (c.fovTarget-c.fov)*alpha
	if math.IsNaN(float64(newFov)) || math.IsInf(float64(newFov), 0) {
		return
	}
	c.fov = clampFov(newFov)
}

// BuildBasis derives the orthonormal (forward, right, up) frame from the
// current pitch and yaw. When includePitchInForward is false the forward
// vector is flattened onto the XZ plane, which free-cam movement uses so
// looking down does not slow horizontal travel.
func (c *Camera) BuildBasis(includePitchInForward bool) Basis {
	sy := float32(math.Sin(float64(c.Yaw)))
	cy := float32(math.Cos(float64(c.Yaw)))
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))

	horiz := float32(1.0)
	fwdY := float32(0.0)
	if includePitchInForward {
		horiz = cp
		fwdY = sp
	}
	forward := rl.Vector3{X: sy * horiz, Y: fwdY, Z: cy * horiz}

	if lenSq(forward) < 1e-12 {
		// Pitch at a pole with no horizontal component left; pick a stable axis.
		forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		forward = rl.Vector3Normalize(forward)
	}

	worldUp := rl.Vector3{X: 0, Y: 1, Z: 0}
	right := rl.Vector3CrossProduct(worldUp, forward)
	if lenSq(right) < 1e-12 {
		// Forward is parallel to world up; any orthogonal axis works.
		right = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else {
		right = rl.Vector3Normalize(right)
	}

	up := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, right))

	return Basis{Forward: forward, Right: right, Up: up}
}

// ViewMatrix returns the column-major view matrix built from the full basis.
func (c *Camera) ViewMatrix() [16]float32 {
	b := c.BuildBasis(true)

	tx := -(b.Right.X*c.Position.X + b.Right.Y*c.Position.Y + b.Right.Z*c.Position.Z)
	ty := -(b.Up.X*c.Position.X + b.Up.Y*c.Position.Y + b.Up.Z*c.Position.Z)
	tz := b.Forward.X*c.Position.X + b.Forward.Y*c.Position.Y + b.Forward.Z*c.Position.Z

	return [16]float32{
		b.Right.X, b.Right.Y, b.Right.Z, 0,
		b.Up.X, b.Up.Y, b.Up.Z, 0,
		-b.Forward.X, -b.Forward.Y, -b.Forward.Z, 0,
		tx, ty, tz, 1,
	}
}

// ProjectionMatrix returns a column-major perspective projection using the
// clamped vertical FOV. Degenerate aspect ratios and plane distances are
// coerced to safe values instead of producing a singular matrix.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) [16]float32 {
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		aspect = 1.0
	}
	if math.IsNaN(float64(near)) || math.IsInf(float64(near), 0) {
		near = 0.1
	}
	if near < 1e-3 {
		near = 1e-3
	}
	if math.IsNaN(float64(far)) || math.IsInf(float64(far), 0) {
		far = near + 1000.0
	}
	if far < near+1e-3 {
		far = near + 1e-3
	}

	fovRad := float64(clampFov(c.fov)) * math.Pi / 180.0
	f := float32(1.0 / math.Tan(fovRad*0.5))
	invDepth := 1.0 / (near - far)

	var proj [16]float32
	proj[0] = f / aspect
	proj[5] = f
	proj[10] = (far + near) * invDepth
	proj[11] = -1
	proj[14] = 2 * far * near * invDepth
	return proj
}

// WorldToScreen projects a world position to pixel coordinates using a
// simplified planar mapping; the FOV acts as a zoom factor around the
// screen centre.
func (c *Camera) WorldToScreen(world rl.Vector3, screenW, screenH int32) (int32, int32) {
	scale := float32(1.0)
	if c.fov > 0 {
		scale = DefaultFovDegrees / c.fov
	}
	sx := (world.X-c.Position.X)*scale + float32(screenW)*0.5
	sy := (world.Y-c.Position.Y)*scale + float32(screenH)*0.5
	return int32(sx + 0.5), int32(sy + 0.5)
}

// Camera3D converts the pose into a raylib camera for rendering.
func (c *Camera) Camera3D() rl.Camera3D {
	b := c.BuildBasis(true)
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, b.Forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       clampFov(c.fov),
		Projection: rl.CameraPerspective,
	}
}

func clampFov(fov float32) float32 {
	f := float64(fov)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return DefaultFovDegrees
	}
	if fov < MinFovDegrees {
		return MinFovDegrees
	}
	if fov > MaxFovDegrees {
		return MaxFovDegrees
	}
	return fov
}

// wrapAngle reduces an angle to (-pi, pi] so yaw differences stay shortest-arc.
func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

func lenSq(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
