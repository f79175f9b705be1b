// Package render drives a full-frame render: it partitions the pixel
// raster across a fixed worker pool, accumulates samples per pixel, and
// applies the firefly clamp / gamma-correct / quantize pipeline that turns
// accumulated radiance into the 8-bit RGBA buffer a RenderTarget holds.
package render

// RenderTarget is a flat, row-major W*H*4 byte buffer: four bytes per
// pixel, [R, G, B, 255], row-major with x increasing rightward and y
// increasing downward. No redraw/dirty flag is carried: that tracked an
// interactive preview window's repaint cadence, and this renderer only
// ever produces one finished buffer per Render call for a batch CLI.
type RenderTarget struct {
	Width, Height int
	Pixels        []byte
}

// NewRenderTarget allocates a zeroed target of the given dimensions.
func NewRenderTarget(width, height int) *RenderTarget {
	return &RenderTarget{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
}

// Set writes one pixel's RGBA quad.
func (t *RenderTarget) Set(x, y int, rgba [4]byte) {
	i := (y*t.Width + x) * 4
	copy(t.Pixels[i:i+4], rgba[:])
}
