package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/pathtrace/pkg/render"
)

func TestSaveImage(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"flat path", "render.png"},
		{"nested path", filepath.Join("out", "sub", "render.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.path)

			target := render.NewRenderTarget(4, 3)
			target.Set(0, 0, [4]byte{10, 20, 30, 255})

			if err := saveImage(target, path); err != nil {
				t.Fatalf("saveImage returned error: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				t.Fatalf("expected output file to exist: %v", err)
			}
			defer file.Close()

			img, err := png.Decode(file)
			if err != nil {
				t.Fatalf("expected a valid PNG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != target.Width || bounds.Dy() != target.Height {
				t.Errorf("expected %dx%d image, got %dx%d", target.Width, target.Height, bounds.Dx(), bounds.Dy())
			}

			r, g, b, _ := img.At(0, 0).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("expected pixel (10,20,30), got (%d,%d,%d)", r>>8, g>>8, b>>8)
			}
		})
	}
}
