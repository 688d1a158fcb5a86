// Package ocr turns scanned page images into text pages.
//
// Word boxes reported by Tesseract (via gosseract) are normalized to page
// coordinates and fed to a word-granular textpage.Page, which then provides
// the usual reading-order text, region extraction and search.
//
// Tesseract support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// It requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag every recognition call returns ErrOCRNotEnabled. Box
// normalization (Fragments, PageFromBoxes) and ImageBounds work in both
// builds, so pages can be built from boxes produced elsewhere.
package ocr
