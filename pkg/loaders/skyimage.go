package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/df07/pathtrace/pkg/background"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// LoadSkyImage reads the sky-map wire format spec.md §6 describes: a
// (width, height) header of two little-endian uint32s, followed by
// width*height pixels of 32-bit floating-point RGBA (alpha ignored),
// row-major with a top-left origin. Grounded on the teacher's
// pkg/loaders/ply.go binary-reading discipline (bufio.Reader,
// encoding/binary.Read for fixed-width fields).
func LoadSkyImage(path string) (*background.SkyMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open sky image %s: %w", path, err)
	}
	defer file.Close()

	r := bufio.NewReader(file)

	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("loaders: read sky image width in %s: %w", path, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("loaders: read sky image height in %s: %w", path, err)
	}

	pixels := make([]vecmath.Vec3, width*height)
	var rgba [4]float32
	for i := range pixels {
		if err := binary.Read(r, binary.LittleEndian, &rgba); err != nil {
			return nil, fmt.Errorf("loaders: read sky image pixel %d in %s: %w", i, path, err)
		}
		pixels[i] = vecmath.NewVec3(float64(rgba[0]), float64(rgba[1]), float64(rgba[2]))
	}

	return background.NewSkyMap(int(width), int(height), pixels), nil
}
