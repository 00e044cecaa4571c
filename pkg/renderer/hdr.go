package renderer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// WritePFM encodes linear colours as a little-endian colour Portable Float Map.
// pixels are in row-major order starting at the top-left corner; PFM stores
// rows bottom to top.
func WritePFM(w io.Writer, width, height int, pixels []core.Colour) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("pfm: %d pixels do not match %dx%d image", len(pixels), width, height)
	}

	bw := bufio.NewWriter(w)
	// Negative scale marks little-endian data
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", width, height); err != nil {
		return fmt.Errorf("pfm: writing header: %w", err)
	}

	row := make([]byte, width*12)
	for y := height - 1; y >= 0; y-- {
		for x, p := range pixels[y*width : (y+1)*width] {
			binary.LittleEndian.PutUint32(row[x*12:], math.Float32bits(p.X()))
			binary.LittleEndian.PutUint32(row[x*12+4:], math.Float32bits(p.Y()))
			binary.LittleEndian.PutUint32(row[x*12+8:], math.Float32bits(p.Z()))
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("pfm: writing row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pfm: %w", err)
	}
	return nil
}
