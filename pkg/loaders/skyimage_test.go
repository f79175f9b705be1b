package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/pathtrace/pkg/vecmath"
)

func writeSkyImageFile(t *testing.T, width, height uint32, pixels [][4]float32) string {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, width)
	binary.Write(&buf, binary.LittleEndian, height)
	for _, p := range pixels {
		binary.Write(&buf, binary.LittleEndian, p)
	}

	path := filepath.Join(t.TempDir(), "sky.bin")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing test sky image: %v", err)
	}
	return path
}

func TestLoadSkyImage_ReadsHeaderAndPixels(t *testing.T) {
	path := writeSkyImageFile(t, 2, 1, [][4]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
	})

	sky, err := LoadSkyImage(path)
	if err != nil {
		t.Fatalf("LoadSkyImage: %v", err)
	}
	if sky.Width != 2 || sky.Height != 1 {
		t.Fatalf("expected 2x1 image, got %dx%d", sky.Width, sky.Height)
	}

	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(1, 0, 0))
	if got := sky.Sample(ray); got.Length() <= 0 {
		t.Errorf("expected nonzero sample from a loaded sky image, got %v", got)
	}
}

func TestLoadSkyImage_MissingFileReturnsError(t *testing.T) {
	if _, err := LoadSkyImage(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("expected error for missing sky image file")
	}
}

func TestLoadSkyImage_TruncatedPixelDataReturnsError(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(4))
	binary.Write(&buf, binary.LittleEndian, uint32(4))
	buf.Write([]byte{0, 1, 2, 3})

	path := filepath.Join(t.TempDir(), "truncated.bin")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing test sky image: %v", err)
	}

	if _, err := LoadSkyImage(path); err == nil {
		t.Error("expected error for truncated sky image pixel data")
	}
}
