package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// Overlay stamps the run's logo onto transformed images. A zero Overlay
// passes results through untouched.
type Overlay struct {
	Logo     *domain.LogoAsset
	Position domain.LogoPosition
	Scale    float64
	Margin   int
}

// LoadLogo decodes the optional watermark file. A missing file yields a nil
// asset with no error; an unreadable or undecodable one reports the cause so
// the caller can warn and run without the overlay.
func LoadLogo(path string) (*domain.LogoAsset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read logo: %w", err)
	}
	img, err := decodePixels(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return &domain.LogoAsset{Pixels: imaging.Clone(img)}, nil
}

// Apply composites the logo over base at the configured corner. The logo is
// rescaled per image so it always spans the same fraction of the base width.
func (o Overlay) Apply(base *domain.TransformResult) *domain.TransformResult {
	if o.Logo == nil || o.Logo.Pixels == nil {
		return base
	}

	baseBounds := base.Pixels.Bounds()
	baseW, baseH := baseBounds.Dx(), baseBounds.Dy()

	logoW := max(int(math.Round(o.Scale*float64(baseW))), 1)
	mark := imaging.Resize(o.Logo.Pixels, logoW, 0, imaging.Lanczos)
	markW, markH := mark.Bounds().Dx(), mark.Bounds().Dy()

	x, y := o.Margin, o.Margin
	if o.Position == domain.PosTopRight || o.Position == domain.PosBottomRight {
		x = baseW - markW - o.Margin
	}
	if o.Position == domain.PosBottomLeft || o.Position == domain.PosBottomRight {
		y = baseH - markH - o.Margin
	}

	return &domain.TransformResult{
		Pixels: imaging.Overlay(base.Pixels, mark, image.Pt(x, y), 1.0),
		Mode:   base.Mode,
	}
}
