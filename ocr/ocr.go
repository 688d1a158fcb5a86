//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/tsawler/textpage"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates a new OCR client with the default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new OCR client with custom configuration.
func NewWithConfig(config Config) (*Client, error) {
	client := gosseract.NewClient()
	if len(config.Languages) > 0 {
		if err := client.SetLanguage(config.Languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(config.PageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}
	return &Client{client: client, config: config}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// WordBoxes performs OCR on image data and returns every recognized word
// with its pixel box.
func (c *Client) WordBoxes(imageData []byte) ([]WordBox, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("get word boxes: %w", err)
	}

	words := make([]WordBox, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, WordBox{Text: b.Word, Box: b.Box, Confidence: b.Confidence})
	}
	return words, nil
}

// RecognizePage performs OCR on image data and returns the words as a
// word-granular page. Boxes below the configured MinConfidence are dropped.
func (c *Client) RecognizePage(imageData []byte, opts textpage.Options) (*textpage.Page, error) {
	bounds, err := ImageBounds(imageData)
	if err != nil {
		return nil, err
	}
	boxes, err := c.WordBoxes(imageData)
	if err != nil {
		return nil, err
	}
	return PageFromBoxes(boxes, bounds, c.config.MinConfidence, opts), nil
}

// SetLanguage sets the language(s) for OCR recognition (e.g. "eng", "fra").
func (c *Client) SetLanguage(langs ...string) error {
	if err := c.client.SetLanguage(langs...); err != nil {
		return err
	}
	c.config.Languages = append([]string(nil), langs...)
	return nil
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	if err := c.client.SetPageSegMode(gosseract.PageSegMode(mode)); err != nil {
		return err
	}
	c.config.PageSegMode = mode
	return nil
}
