package pipeline

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// Transform is the geometry stage, configured once per run.
type Transform struct {
	Mode       domain.TransformMode
	Canvas     domain.CanvasSpec
	Longest    int
	SafePad    int
	Background color.NRGBA
}

// Apply resizes src according to the configured mode.
func (t Transform) Apply(src *domain.SourceImage) (*domain.TransformResult, error) {
	switch t.Mode {
	case domain.ModeCanvas:
		return t.fitToCanvas(src), nil
	case domain.ModeLongest:
		return t.clampLongest(src), nil
	default:
		return nil, domain.ErrNoOutputMode
	}
}

// fitToCanvas scales src to fit inside the canvas minus padding, keeping
// aspect ratio, and centers it over the background fill. Sources smaller
// than the usable area are scaled up, never left floating at native size.
func (t Transform) fitToCanvas(src *domain.SourceImage) *domain.TransformResult {
	bounds := src.Pixels.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	usableW := max(t.Canvas.Width-2*t.SafePad, 1)
	usableH := max(t.Canvas.Height-2*t.SafePad, 1)

	scale := math.Min(float64(usableW)/float64(srcW), float64(usableH)/float64(srcH))
	w := scaleDim(srcW, scale)
	h := scaleDim(srcH, scale)

	content := imaging.Resize(src.Pixels, w, h, imaging.Lanczos)
	canvas := imaging.New(t.Canvas.Width, t.Canvas.Height, t.Background)
	origin := image.Pt((t.Canvas.Width-w)/2, (t.Canvas.Height-h)/2)

	if src.Mode == domain.ColorAlpha {
		canvas = imaging.Overlay(canvas, content, origin, 1.0)
	} else {
		canvas = imaging.Paste(canvas, content, origin)
	}
	return &domain.TransformResult{Pixels: canvas, Mode: src.Mode}
}

// clampLongest shrinks src so its longest side lands exactly on the target.
// Images already at or under the target pass through untouched.
func (t Transform) clampLongest(src *domain.SourceImage) *domain.TransformResult {
	bounds := src.Pixels.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	if max(srcW, srcH) <= t.Longest {
		return &domain.TransformResult{Pixels: src.Pixels, Mode: src.Mode}
	}

	scale := float64(t.Longest) / float64(max(srcW, srcH))
	var w, h int
	if srcW >= srcH {
		w, h = t.Longest, scaleDim(srcH, scale)
	} else {
		w, h = scaleDim(srcW, scale), t.Longest
	}
	return &domain.TransformResult{
		Pixels: imaging.Resize(src.Pixels, w, h, imaging.Lanczos),
		Mode:   src.Mode,
	}
}

// scaleDim rounds a scaled dimension to the nearest pixel, never below one.
func scaleDim(d int, scale float64) int {
	return max(int(math.Round(float64(d)*scale)), 1)
}
