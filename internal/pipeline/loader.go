package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
	"github.com/farzanhk9/Story-Post-Square/internal/exifmeta"
)

// LoadImage decodes one input file into the pipeline's working
// representation. Pixels are auto-oriented so later stages work on upright
// buffers, and the EXIF block of JPEG sources is lifted for optional
// passthrough at encode time.
func LoadImage(path string) (*domain.SourceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	img, err := decodePixels(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDecodeFailed, filepath.Base(path), err)
	}

	src := &domain.SourceImage{
		Path:   path,
		Pixels: imaging.Clone(img),
		Mode:   colorModeOf(img),
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		src.EXIF = exifmeta.Extract(bytes.NewReader(data))
	}
	return src, nil
}

// decodePixels picks the decoder by extension. The standard image registry
// covers jpeg, png and gif; webp needs its own decoder.
func decodePixels(path string, data []byte) (image.Image, error) {
	if strings.ToLower(filepath.Ext(path)) == ".webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// colorModeOf classifies a decoded image by whether it actually carries
// transparency, not by its storage format alone.
func colorModeOf(img image.Image) domain.ColorMode {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok && !o.Opaque() {
		return domain.ColorAlpha
	}
	return domain.ColorOpaque
}
