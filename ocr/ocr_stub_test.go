//go:build !ocr

package ocr

import (
	"errors"
	"testing"

	"github.com/tsawler/textpage"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}

	if _, err := NewWithConfig(DefaultConfig()); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from NewWithConfig, got: %v", err)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	err := client.Close()
	if err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubRecognition(t *testing.T) {
	client := &Client{}
	if _, err := client.RecognizePage(nil, textpage.DefaultOptions()); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from RecognizePage, got: %v", err)
	}
	if _, err := client.WordBoxes(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from WordBoxes, got: %v", err)
	}
}
