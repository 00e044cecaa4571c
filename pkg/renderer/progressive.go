package renderer

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/log"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

var logger = log.New("renderer")

var (
	// ErrInvalidConfig is returned by NewCamera for unusable settings
	ErrInvalidConfig = errors.New("invalid camera configuration")

	// ErrCameraClosed is reported by progressive renders of a closed camera
	ErrCameraClosed = errors.New("camera closed")
)

// maxPitch keeps the view direction away from the up vector
const maxPitch = 89

// Config contains the settings of an interactive camera session
type Config struct {
	Position      core.Point
	Direction     core.Vec3 // Initial view direction, need not be normalized
	Width, Height int       // Display resolution
	DisplayScale  int       // Display pixels per rendered pixel along each axis
	MaxDepth      int       // Maximum number of bounces per path
	VFov          float32   // Vertical field of view in degrees
	Up            core.Vec3
	DefocusAngle  float32 // Degrees, 0 disables depth of field
	FocusDistance float32
	Background    integrator.Background // nil renders a black background
	Exposure      float32               // 0 selects gamma-only tone mapping
	NumWorkers    int                   // 0 selects DefaultWorkers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Position:      core.NewVec3(0, 0, 0),
		Direction:     core.NewVec3(0, 0, -1),
		Width:         800,
		Height:        450,
		DisplayScale:  1,
		MaxDepth:      50,
		VFov:          40,
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// Validate checks that a camera can be built from config
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.DisplayScale < 1:
		return fmt.Errorf("%w: display scale %d", ErrInvalidConfig, c.DisplayScale)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("%w: vertical fov %g", ErrInvalidConfig, c.VFov)
	case c.FocusDistance <= 0:
		return fmt.Errorf("%w: focus distance %g", ErrInvalidConfig, c.FocusDistance)
	case c.Direction.NearZero():
		return fmt.Errorf("%w: zero view direction", ErrInvalidConfig)
	case c.Up.NearZero():
		return fmt.Errorf("%w: zero up vector", ErrInvalidConfig)
	}
	return nil
}

// Camera is an interactive render session. It owns the accumulation buffer
// and refines it by one sample per pixel on every Render call; changes to the
// pose, lens or world restart the accumulation. A Camera is not safe for
// concurrent use.
type Camera struct {
	config     Config
	position   core.Point
	pitch, yaw float32 // Degrees
	vfov       float32
	defocus    float32
	focusDist  float32

	width, height int // Render resolution
	rtCam         *RaytracingCamera
	integrator    *integrator.PathTracingIntegrator
	world         geometry.Hittable
	toneMap       ToneMap

	acc     []core.Colour
	pixels  []uint32
	samples int

	pool      *WorkerPool
	closed    bool
	stats     RenderStats
	resetTime time.Time
}

// NewCamera creates a session rendering an empty world until SetWorld is called
func NewCamera(config Config) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width := max(1, config.Width/config.DisplayScale)
	height := max(1, config.Height/config.DisplayScale)

	dir := config.Direction.Normalize()
	pitch := core.Clamp(math32.Asin(core.Clamp(dir.Y(), -1, 1))*180/math32.Pi, -maxPitch, maxPitch)
	yaw := math32.Atan2(dir.Z(), dir.X()) * 180 / math32.Pi

	pool := NewWorkerPool(config.NumWorkers, height)

	c := &Camera{
		config:     config,
		position:   config.Position,
		pitch:      pitch,
		yaw:        yaw,
		vfov:       config.VFov,
		defocus:    config.DefocusAngle,
		focusDist:  config.FocusDistance,
		width:      width,
		height:     height,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, config.Background),
		world:      geometry.NewList(),
		toneMap:    ToneMap{Exposure: config.Exposure},
		acc:        make([]core.Colour, width*height),
		pixels:     make([]uint32, width*height),
		pool:       pool,
	}
	c.stats = RenderStats{Width: width, Height: height, Workers: pool.GetNumWorkers()}

	logger.Infof("camera %dx%d (display %dx%d), %d workers",
		width, height, config.Width, config.Height, pool.GetNumWorkers())
	return c, nil
}

// SetWorld validates world and makes it the rendered scene
func (c *Camera) SetWorld(world geometry.Hittable) error {
	if err := geometry.Validate(world); err != nil {
		return fmt.Errorf("set world: %w", err)
	}
	c.world = world
	c.reset()
	return nil
}

// MoveBy translates the camera. A zero step keeps the accumulation.
func (c *Camera) MoveBy(step core.Vec3) {
	if step == (core.Vec3{}) {
		return
	}
	c.position = c.position.Add(step)
	c.reset()
}

// ChangePitchYawBy rotates the view by the given angles in degrees. Pitch is
// limited to ±89 degrees.
func (c *Camera) ChangePitchYawBy(deltaPitch, deltaYaw float32) {
	if deltaPitch == 0 && deltaYaw == 0 {
		return
	}
	c.pitch = core.Clamp(c.pitch+deltaPitch, -maxPitch, maxPitch)
	c.yaw += deltaYaw
	c.reset()
}

// SetLens changes the field of view and the depth of field parameters
func (c *Camera) SetLens(vfov, defocusAngle, focusDistance float32) error {
	if vfov <= 0 || vfov >= 180 || focusDistance <= 0 {
		return fmt.Errorf("%w: lens fov=%g focus=%g", ErrInvalidConfig, vfov, focusDistance)
	}
	c.vfov, c.defocus, c.focusDist = vfov, defocusAngle, focusDistance
	c.reset()
	return nil
}

// SetMaxDepth changes the bounce limit of new paths
func (c *Camera) SetMaxDepth(depth int) {
	if depth == c.integrator.MaxDepth {
		return
	}
	c.integrator.MaxDepth = max(depth, 0)
	c.reset()
}

// SetExposure changes the tone map. The accumulated radiance is kept and the
// display buffer is refreshed from it.
func (c *Camera) SetExposure(exposure float32) {
	c.toneMap.Exposure = exposure
	if c.samples == 0 {
		return
	}
	scale := 1 / float32(c.samples)
	for i, sum := range c.acc {
		c.pixels[i] = c.toneMap.Pack(sum.Multiply(scale))
	}
}

// Exposure returns the current tone map exposure
func (c *Camera) Exposure() float32 { return c.toneMap.Exposure }

func (c *Camera) reset() {
	if c.samples > 0 {
		c.stats.Resets++
		logger.Debugf("accumulation reset after %d samples", c.samples)
	}
	c.samples = 0
}

// Forward returns the unit view direction for the current pitch and yaw
func (c *Camera) Forward() core.Vec3 {
	pitch := c.pitch * math32.Pi / 180
	yaw := c.yaw * math32.Pi / 180
	return core.NewVec3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	)
}

// Right returns the horizontal unit vector to the right of the view
func (c *Camera) Right() core.Vec3 { return c.Forward().Cross(c.Up()).Normalize() }

// Up returns the world up vector
func (c *Camera) Up() core.Vec3 { return c.config.Up.Normalize() }

// Position returns the camera position
func (c *Camera) Position() core.Point { return c.position }

// PitchYaw returns the view angles in degrees
func (c *Camera) PitchYaw() (pitch, yaw float32) { return c.pitch, c.yaw }

// Size returns the render resolution
func (c *Camera) Size() (width, height int) { return c.width, c.height }

// DisplayScale returns the display pixels per rendered pixel
func (c *Camera) DisplayScale() int { return c.config.DisplayScale }

// Samples returns the number of samples accumulated per pixel
func (c *Camera) Samples() int { return c.samples }

// Stats returns statistics of the latest pass
func (c *Camera) Stats() RenderStats { return c.stats }

// Pixels returns the display buffer. It is overwritten by the next pass.
func (c *Camera) Pixels() []uint32 { return c.pixels }

// updateRaytracingCamera rebuilds the ray generator and clears the
// accumulation at the start of a new sequence
func (c *Camera) updateRaytracingCamera() {
	if c.samples != 0 {
		return
	}

	c.rtCam = c.newRaytracingCamera()
	clear(c.acc)
	c.stats.TotalTime = 0
	c.resetTime = time.Now()
}

// newRaytracingCamera builds the ray generator for the current pose and lens
func (c *Camera) newRaytracingCamera() *RaytracingCamera {
	return NewRaytracingCamera(CameraConfig{
		Width:         c.width,
		Height:        c.height,
		VFov:          c.vfov,
		Center:        c.position,
		LookAt:        c.position.Add(c.Forward()),
		Up:            c.config.Up,
		DefocusAngle:  c.defocus,
		FocusDistance: c.focusDist,
	})
}

// Render adds one sample per pixel and returns the refreshed display buffer.
// A closed camera returns the last display buffer unchanged.
func (c *Camera) Render() []uint32 {
	if c.closed {
		logger.Warning("render requested on a closed camera")
		return c.pixels
	}
	c.updateRaytracingCamera()
	c.samples++

	start := time.Now()
	if err := c.rtCam.Render(c.pool, c.world, c.integrator, c.samples, c.acc, c.pixels, c.toneMap); err != nil {
		logger.Warningf("render pass failed: %v", err)
		c.samples--
		return c.pixels
	}

	c.stats.Samples = c.samples
	c.stats.PassTime = time.Since(start)
	c.stats.TotalTime = time.Since(c.resetTime)
	logger.Debugf("sample %d rendered in %v", c.samples, c.stats.PassTime)

	return c.pixels
}

// RenderSamples renders n passes back to back
func (c *Camera) RenderSamples(n int) []uint32 {
	for i := 0; i < n; i++ {
		c.Render()
	}
	return c.pixels
}

// HDR returns the averaged linear radiance of every pixel
func (c *Camera) HDR() []core.Colour {
	hdr := make([]core.Colour, len(c.acc))
	if c.samples == 0 {
		return hdr
	}
	scale := 1 / float32(c.samples)
	for i, sum := range c.acc {
		hdr[i] = sum.Multiply(scale)
	}
	return hdr
}

// Image copies the display buffer into an RGBA image
func (c *Camera) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pixels {
		binary.LittleEndian.PutUint32(img.Pix[i*4:], p)
	}
	return img
}

// Inspect traces the center ray of render pixel (x, y) and returns the nearest
// surface it hits. Media along the ray are sampled with a fixed seed.
func (c *Camera) Inspect(x, y int) (material.HitRecord, bool) {
	var rec material.HitRecord
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return rec, false
	}
	rtCam := c.rtCam
	if c.samples == 0 {
		// The pose may have changed since the last pass
		rtCam = c.newRaytracingCamera()
	}

	ray := rtCam.CenterRay(x, y)
	tracer := geometry.NewTracer()
	seed := core.NewSeed(uint64(x), uint64(y))
	hit := tracer.Hit(c.world, ray, core.NewInterval(0.001, math32.Inf(1)), &rec, seed)
	return rec, hit
}

// Close stops the worker pool. The camera cannot render afterwards.
func (c *Camera) Close() {
	c.closed = true
	c.pool.Stop()
}

// Closed reports whether Close has been called
func (c *Camera) Closed() bool { return c.closed }

// PassResult contains the result of a single progressive pass
type PassResult struct {
	Samples int
	Image   *image.RGBA
	Stats   RenderStats
	IsLast  bool
}

// RenderProgressive renders up to passes samples per pixel in the background,
// sending a snapshot after every pass. Cancellation is checked between
// passes. The camera must not be used by others until both channels close.
func (c *Camera) RenderProgressive(ctx context.Context, passes int) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		logger.Infof("starting progressive rendering with %d passes", passes)

		for pass := 1; pass <= passes; pass++ {
			select {
			case <-ctx.Done():
				logger.Infof("rendering cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}
			if c.closed {
				errChan <- ErrCameraClosed
				return
			}

			c.Render()

			result := PassResult{
				Samples: c.samples,
				Image:   c.Image(),
				Stats:   c.stats,
				IsLast:  pass == passes,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
