package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Decoders for ImageBounds
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/textpage"
	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/text"
)

// WordBox is one recognized word in pixel coordinates
type WordBox struct {
	Text string
	Box  image.Rectangle
	// Confidence is Tesseract's score from 0 to 100
	Confidence float64
}

// ImageBounds returns the pixel bounds of an encoded image without decoding
// its pixels. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func ImageBounds(data []byte) (image.Rectangle, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Rectangle{}, ErrEmptyImage
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height), nil
}

// Fragments converts word boxes into normalized page fragments relative to
// bounds. Boxes below minConfidence or without text are skipped.
func Fragments(boxes []WordBox, bounds image.Rectangle, minConfidence float64) []text.Fragment {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return nil
	}

	fragments := make([]text.Fragment, 0, len(boxes))
	for _, b := range boxes {
		if b.Confidence < minConfidence || strings.TrimSpace(b.Text) == "" {
			continue
		}
		fragments = append(fragments, text.Fragment{
			Text: strings.TrimSpace(b.Text),
			Area: model.NewNormalizedRect(
				float64(b.Box.Min.X-bounds.Min.X)/w,
				float64(b.Box.Min.Y-bounds.Min.Y)/h,
				float64(b.Box.Max.X-bounds.Min.X)/w,
				float64(b.Box.Max.Y-bounds.Min.Y)/h,
			),
		})
	}
	return fragments
}

// PageFromBoxes builds a word-granular page from word boxes. Only the
// granularity of opts is overridden.
func PageFromBoxes(boxes []WordBox, bounds image.Rectangle, minConfidence float64, opts textpage.Options) *textpage.Page {
	page := textpage.NewWithOptions(opts.WithGranularity(text.Word))
	page.AppendFragments(Fragments(boxes, bounds, minConfidence)...)
	return page
}
