package label

import (
	"bytes"
	"fmt"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/disintegration/imaging"
)

// BarcodeFormat selects the barcode symbology of a template
type BarcodeFormat int

const (
	FormatEAN13 BarcodeFormat = iota
	FormatCode128
)

// Pixel density used when rasterizing barcodes before embedding them.
// 8 px/mm keeps the bars crisp at thermal-printer resolutions
const barcodePixelsPerMM = 8

// GenerateBarcode renders a barcode as PNG bytes sized for a widthMM×heightMM
// box. When rotated is true the bars are turned 90 degrees so the long axis of
// the box runs vertically.
//
// An EAN-13 template with a value that is not a valid EAN-13 payload falls
// back to Code 128 and reports a warning instead of failing the document.
func GenerateBarcode(format BarcodeFormat, value string, widthMM, heightMM float64, rotated bool) ([]byte, string, error) {
	var (
		code    barcode.Barcode
		warning string
		err     error
	)

	switch format {
	case FormatEAN13:
		code, err = ean.Encode(value)
		if err != nil {
			warning = fmt.Sprintf("value %s is not a valid EAN-13 payload, falling back to Code 128", value)
			code, err = code128.Encode(value)
		}
	case FormatCode128:
		code, err = code128.Encode(value)
	default:
		return nil, "", fmt.Errorf("unknown barcode format %d", format)
	}
	if err != nil {
		return nil, warning, fmt.Errorf("failed to encode barcode %s: %w", value, err)
	}

	// Scale in the bars' own orientation: the long axis carries the bars
	longPx := int(widthMM * barcodePixelsPerMM)
	shortPx := int(heightMM * barcodePixelsPerMM)
	if rotated {
		longPx = int(heightMM * barcodePixelsPerMM)
		shortPx = int(widthMM * barcodePixelsPerMM)
	}

	scaled, err := barcode.Scale(code, longPx, shortPx)
	if err != nil {
		return nil, warning, fmt.Errorf("failed to scale barcode %s: %w", value, err)
	}

	img := imaging.Clone(scaled)
	if rotated {
		img = imaging.Rotate90(img)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, warning, fmt.Errorf("failed to encode barcode image: %w", err)
	}
	return buf.Bytes(), warning, nil
}
