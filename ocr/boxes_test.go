package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/tsawler/textpage"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func blankImage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestImageBounds(t *testing.T) {
	img := blankImage(120, 80)

	var pngBuf, bmpBuf, tiffBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, img); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}
	if err := tiff.Encode(&tiffBuf, img, nil); err != nil {
		t.Fatalf("tiff encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"png", pngBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
		{"tiff", tiffBuf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := ImageBounds(tt.data)
			if err != nil {
				t.Fatalf("ImageBounds failed: %v", err)
			}
			if bounds != image.Rect(0, 0, 120, 80) {
				t.Errorf("Expected 120x80 bounds, got %v", bounds)
			}
		})
	}
}

func TestImageBounds_Invalid(t *testing.T) {
	if _, err := ImageBounds([]byte("not an image")); err == nil {
		t.Error("Expected error for invalid image data")
	}
}

func testBoxes() []WordBox {
	return []WordBox{
		{Text: "World", Box: image.Rect(80, 10, 140, 30), Confidence: 95},
		{Text: "Hello ", Box: image.Rect(20, 10, 70, 30), Confidence: 90},
		{Text: "smudge", Box: image.Rect(20, 60, 40, 70), Confidence: 12},
		{Text: "  ", Box: image.Rect(150, 10, 160, 30), Confidence: 99},
	}
}

func TestFragments(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 100)

	fragments := Fragments(testBoxes(), bounds, 50)
	if len(fragments) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(fragments))
	}

	hello := fragments[1]
	if hello.Text != "Hello" {
		t.Errorf("Expected trimmed text 'Hello', got %q", hello.Text)
	}
	a := hello.Area
	if math.Abs(a.Left-0.1) > 1e-9 || math.Abs(a.Top-0.1) > 1e-9 ||
		math.Abs(a.Right-0.35) > 1e-9 || math.Abs(a.Bottom-0.3) > 1e-9 {
		t.Errorf("Unexpected normalized area %+v", a)
	}

	if got := Fragments(testBoxes(), image.Rectangle{}, 0); got != nil {
		t.Errorf("Expected nil fragments for empty bounds, got %v", got)
	}
}

func TestPageFromBoxes(t *testing.T) {
	page := PageFromBoxes(testBoxes(), image.Rect(0, 0, 200, 100), 50, textpage.DefaultOptions())

	if got := page.Text(textpage.NoRegion); got != "Hello World" {
		t.Errorf("Expected 'Hello World', got %q", got)
	}
	if page.Options().Granularity.String() != "word" {
		t.Errorf("Expected word granularity, got %v", page.Options().Granularity)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if len(config.Languages) != 1 || config.Languages[0] != "eng" {
		t.Errorf("Expected [eng], got %v", config.Languages)
	}
	if config.PageSegMode != PSM_AUTO {
		t.Errorf("Expected PSM_AUTO, got %v", config.PageSegMode)
	}
}
