package background

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/tiff" // HDR equirectangular sky maps are frequently distributed as TIFF

	"github.com/df07/pathtrace/pkg/vecmath"
)

// SkyMap is an equirectangular environment map sampled by spherical lookup
// of the escaping ray's direction.
type SkyMap struct {
	Width, Height int
	pixels        []vecmath.Vec3 // row-major, y=0 at the top of the image
}

// NewSkyMap builds a SkyMap from a pre-decoded pixel buffer.
func NewSkyMap(width, height int, pixels []vecmath.Vec3) *SkyMap {
	return &SkyMap{Width: width, Height: height, pixels: pixels}
}

// LoadSkyMap decodes a PNG, JPEG, or TIFF equirectangular image from disk.
func LoadSkyMap(filename string) (*SkyMap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open sky map: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sky map: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]vecmath.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = vecmath.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewSkyMap(width, height, pixels), nil
}

// Sample implements Background via the spherical-coordinate lookup: phi is
// the polar angle from the -Y axis, theta the azimuth around Y.
func (s *SkyMap) Sample(ray vecmath.Ray) vecmath.Vec3 {
	d := ray.Direction.Normalize()

	phi := math.Acos(-d.Y)
	theta := math.Atan2(-d.Z, d.X) + math.Pi

	u := phi / math.Pi
	v := theta / (2 * math.Pi)

	x := int(v*float64(s.Width)) % s.Width
	if x < 0 {
		x += s.Width
	}
	yIdx := int(u*float64(s.Height)) % s.Height
	if yIdx < 0 {
		yIdx += s.Height
	}
	y := (s.Height - 1) - yIdx

	return s.pixels[x+y*s.Width]
}
