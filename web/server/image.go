package server

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// upscale enlarges a rendered frame to display size with nearest-neighbour
// sampling so every rendered pixel covers a scale x scale block
func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// encodeFrame returns the display-size PNG of a rendered frame
func encodeFrame(src *image.RGBA, scale int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, upscale(src, scale)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeFrameBase64 converts a frame to base64-encoded PNG
func encodeFrameBase64(src *image.RGBA, scale int) (string, error) {
	data, err := encodeFrame(src, scale)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
