package renderer

import (
	"time"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// RenderStats contains statistics about the most recent render pass
type RenderStats struct {
	Width, Height int           // Render buffer size
	Samples       int           // Samples accumulated per pixel
	Workers       int           // Workers used by the pass
	PassTime      time.Duration // Duration of the last pass
	TotalTime     time.Duration // Time spent since the accumulation was reset
	Resets        int           // Number of accumulation resets of the session
}

// TotalPixels returns the number of pixels in the render buffer
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// SamplesPerSecond returns the primary sample throughput of the last pass
func (s RenderStats) SamplesPerSecond() float64 {
	if s.PassTime <= 0 {
		return 0
	}
	return float64(s.TotalPixels()) / s.PassTime.Seconds()
}

// AverageLuminance returns the mean luminance of a linear colour buffer
func AverageLuminance(pixels []core.Colour) float32 {
	if len(pixels) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pixels {
		sum += float64(p.Luminance())
	}
	return float32(sum / float64(len(pixels)))
}
