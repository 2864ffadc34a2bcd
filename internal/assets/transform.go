package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // 註冊 webp 解碼器
)

const (
	// MaxWidth is the widest stored image; wider uploads are downscaled.
	MaxWidth = 1000
	// Quality is the JPEG recompression quality.
	Quality = 80
	// Ext and ContentType describe the single stored format.
	Ext         = ".jpg"
	ContentType = "image/jpeg"
)

var ErrUnsupportedInput = errors.New("unsupported image input")

// Transform decodes raw, caps its width at MaxWidth keeping the aspect ratio,
// flattens transparency onto white and re-encodes it as JPEG.
func Transform(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrUnsupportedInput)
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
	}

	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	bounds := img.Bounds()
	flat := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
