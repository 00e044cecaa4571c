package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
)

// CameraConfig contains the parameters of a thin-lens pinhole camera
type CameraConfig struct {
	Width, Height int
	VFov          float32   // Vertical field of view in degrees
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction, need not be orthogonal to the view
	DefocusAngle  float32   // Aperture cone angle in degrees, 0 disables depth of field
	FocusDistance float32   // Distance to the plane of perfect focus
}

// RaytracingCamera generates primary rays for a fixed pose. It is immutable
// once built and shared by all workers of a pass.
type RaytracingCamera struct {
	Width, Height int
	Center        core.Point
	Pixel00       core.Point // Center of the top-left pixel
	PixelDeltaU   core.Vec3  // Offset to the pixel on the right
	PixelDeltaV   core.Vec3  // Offset to the pixel below
	DefocusAngle  float32
	DefocusDiskU  core.Vec3
	DefocusDiskV  core.Vec3

	u, v, w core.Vec3 // Camera frame: right, up, backwards
}

// NewRaytracingCamera derives the viewport and lens basis from config
func NewRaytracingCamera(config CameraConfig) *RaytracingCamera {
	if config.Width <= 0 || config.Height <= 0 {
		panic(fmt.Sprintf("renderer: invalid image size %dx%d", config.Width, config.Height))
	}

	theta := config.VFov * math32.Pi / 180
	h := math32.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float32(config.Width) / float32(config.Height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float32(config.Width))
	pixelDeltaV := viewportV.Divide(float32(config.Height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math32.Tan(config.DefocusAngle/2*math32.Pi/180)

	return &RaytracingCamera{
		Width:        config.Width,
		Height:       config.Height,
		Center:       config.Center,
		Pixel00:      pixel00,
		PixelDeltaU:  pixelDeltaU,
		PixelDeltaV:  pixelDeltaV,
		DefocusAngle: config.DefocusAngle,
		DefocusDiskU: u.Multiply(defocusRadius),
		DefocusDiskV: v.Multiply(defocusRadius),
		u:            u,
		v:            v,
		w:            w,
	}
}

// GetRay returns a jittered ray through pixel (x, y), starting on the defocus
// disk when depth of field is enabled, at a random shutter time
func (c *RaytracingCamera) GetRay(seed *core.Seed, x, y int) core.Ray {
	pixelCenter := c.Pixel00.
		Add(c.PixelDeltaU.Multiply(float32(x))).
		Add(c.PixelDeltaV.Multiply(float32(y)))

	px := seed.Float32() - 0.5
	py := seed.Float32() - 0.5
	pixelSample := pixelCenter.
		Add(c.PixelDeltaU.Multiply(px)).
		Add(c.PixelDeltaV.Multiply(py))

	origin := c.Center
	if c.DefocusAngle > 0 {
		origin = c.defocusDiskSample(seed)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin), seed.Float32())
}

// CenterRay returns the pinhole ray through the center of pixel (x, y) at time 0
func (c *RaytracingCamera) CenterRay(x, y int) core.Ray {
	pixelCenter := c.Pixel00.
		Add(c.PixelDeltaU.Multiply(float32(x))).
		Add(c.PixelDeltaV.Multiply(float32(y)))
	return core.NewRay(c.Center, pixelCenter.Subtract(c.Center), 0)
}

func (c *RaytracingCamera) defocusDiskSample(seed *core.Seed) core.Point {
	p := core.RandomInUnitDisk(seed)
	return c.Center.Add(c.DefocusDiskU.Multiply(p.X())).Add(c.DefocusDiskV.Multiply(p.Y()))
}

// Forward returns the viewing direction
func (c *RaytracingCamera) Forward() core.Vec3 { return c.w.Negate() }

// Right returns the unit vector towards increasing x
func (c *RaytracingCamera) Right() core.Vec3 { return c.u }

// renderPass is the read-only state shared by every row of one pass
type renderPass struct {
	camera     *RaytracingCamera
	world      geometry.Hittable
	integrator integrator.Integrator
	samples    int // Samples accumulated per pixel after this pass
	bufferLen  int
	toneMap    ToneMap
}

// Render adds one sample per pixel into acc and writes the tone-mapped
// running average into out. samples is the total count after this pass.
// Rows are distributed over pool and each row only touches its own slices of
// acc and out. A stopped pool yields ErrPoolStopped.
func (c *RaytracingCamera) Render(pool *WorkerPool, world geometry.Hittable, integ integrator.Integrator,
	samples int, acc []core.Colour, out []uint32, toneMap ToneMap) error {
	size := c.Width * c.Height
	if len(acc) != size || len(out) != size {
		panic(fmt.Sprintf("renderer: buffer sizes acc=%d out=%d do not match %dx%d image",
			len(acc), len(out), c.Width, c.Height))
	}
	if samples < 1 {
		panic(fmt.Sprintf("renderer: sample count %d must be positive", samples))
	}

	pass := &renderPass{
		camera:     c,
		world:      world,
		integrator: integ,
		samples:    samples,
		bufferLen:  size,
		toneMap:    toneMap,
	}

	if pool.Stopped() {
		return ErrPoolStopped
	}

	pool.Start()
	submitted := make(chan int, 1)
	go func() {
		rows := 0
		for y := 0; y < c.Height; y++ {
			start := y * c.Width
			ok := pool.SubmitTask(RowTask{
				pass: pass,
				Row:  y,
				Acc:  acc[start : start+c.Width : start+c.Width],
				Out:  out[start : start+c.Width : start+c.Width],
			})
			if !ok {
				break
			}
			rows++
		}
		submitted <- rows
	}()

	expected := c.Height
	for received := 0; received < expected; {
		select {
		case rows := <-submitted:
			expected = rows
			submitted = nil
		case _, ok := <-pool.resultQueue:
			if !ok {
				return ErrPoolStopped
			}
			received++
		}
	}
	if expected < c.Height {
		return ErrPoolStopped
	}
	return nil
}

// renderRow traces one sample for every pixel of a row
func (p *renderPass) renderRow(tracer *geometry.Tracer, task RowTask) {
	seed := core.NewSeed(uint64(task.Row), uint64(p.samples), uint64(p.bufferLen), uint64(task.Row))
	scale := 1 / float32(p.samples)

	for x := range task.Acc {
		ray := p.camera.GetRay(seed, x, task.Row)
		colour := p.integrator.RayColour(ray, p.world, tracer, seed)
		if !colour.IsFinite() {
			// Non-finite samples are dropped
			colour = core.Colour{}
		}

		task.Acc[x] = task.Acc[x].Add(colour)
		task.Out[x] = p.toneMap.Pack(task.Acc[x].Multiply(scale))
	}
}
