package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
	"github.com/farzanhk9/Story-Post-Square/internal/exifmeta"
)

// Encode serializes a transform result per the output spec. When the spec
// keeps metadata and exifRaw is present, the block is re-embedded into JPEG
// output with its orientation tag reset to upright.
func Encode(res *domain.TransformResult, spec domain.OutputSpec, exifRaw []byte) ([]byte, error) {
	var buf bytes.Buffer

	switch spec.Format {
	case domain.FormatJPEG:
		var img image.Image = res.Pixels
		if res.Mode == domain.ColorAlpha {
			img = dropAlpha(res.Pixels)
		}
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(spec.Quality)); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		if !spec.StripEXIF && len(exifRaw) > 0 {
			return exifmeta.Embed(buf.Bytes(), exifmeta.ResetOrientation(exifRaw))
		}
		return buf.Bytes(), nil

	case domain.FormatPNG:
		level := png.DefaultCompression
		if spec.Optimize {
			level = png.BestCompression
		}
		if err := imaging.Encode(&buf, res.Pixels, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, spec.Format)
	}
}

// dropAlpha discards the alpha channel outright, keeping the stored color
// values instead of compositing them over a background. Pipeline buffers
// always use the canonical stride, so the pixel data can be walked linearly.
func dropAlpha(src *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		out.Pix[i] = src.Pix[i]
		out.Pix[i+1] = src.Pix[i+1]
		out.Pix[i+2] = src.Pix[i+2]
		out.Pix[i+3] = 0xff
	}
	return out
}
