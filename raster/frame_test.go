package raster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestComposeFillsBackground(t *testing.T) {
	comp, err := NewComposer(color.Black)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	src.SetRGBA(5, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := comp.Compose(src, "")
	r, g, b, a := out.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Expected opaque black background, got %v", out.At(0, 0))
	}
	if r, _, _, _ := out.At(5, 5).RGBA(); r != 0xffff {
		t.Errorf("Expected white source pixel to survive, got %v", out.At(5, 5))
	}
}

func TestComposeCaption(t *testing.T) {
	comp, err := NewComposer(color.Black)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	src := image.NewRGBA(image.Rect(0, 0, 120, 40))
	out := comp.Compose(src, "frame 0001")

	lit := false
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !lit; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, _, _, _ := out.At(x, y).RGBA(); r > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("Expected caption pixels to be drawn")
	}
}

func TestSavePNG(t *testing.T) {
	comp, err := NewComposer(color.Black)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := comp.SavePNG(path, image.NewRGBA(image.Rect(0, 0, 8, 8)), ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty PNG, got %v (%v)", info, err)
	}

	bad := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := comp.SavePNG(bad, image.NewRGBA(image.Rect(0, 0, 8, 8)), ""); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
