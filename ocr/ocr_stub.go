//go:build !ocr

package ocr

import "github.com/tsawler/textpage"

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// NewWithConfig returns an error indicating OCR support is not enabled.
func NewWithConfig(config Config) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Config returns the default configuration.
func (c *Client) Config() Config {
	return DefaultConfig()
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// WordBoxes returns an error indicating OCR support is not enabled.
func (c *Client) WordBoxes(imageData []byte) ([]WordBox, error) {
	return nil, ErrOCRNotEnabled
}

// RecognizePage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizePage(imageData []byte, opts textpage.Options) (*textpage.Page, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(langs ...string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
