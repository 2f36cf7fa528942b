package domain

import "image"

// ColorMode enumerates the pixel layouts an image travels through the
// pipeline in. Buffers are always NRGBA; the mode records whether the source
// carried transparency so encoders know how to flatten.
type ColorMode string

const (
	ColorOpaque ColorMode = "opaque"
	ColorAlpha  ColorMode = "alpha"
)

// TransformMode selects which geometry operation a run applies.
type TransformMode string

const (
	ModeCanvas  TransformMode = "canvas"
	ModeLongest TransformMode = "longest"
)

// OutputFormat enumerates supported output encodings.
type OutputFormat string

const (
	FormatJPEG OutputFormat = "jpg"
	FormatPNG  OutputFormat = "png"
)

// LogoPosition enumerates the corners a logo can be anchored to.
type LogoPosition string

const (
	PosTopLeft     LogoPosition = "top-left"
	PosTopRight    LogoPosition = "top-right"
	PosBottomLeft  LogoPosition = "bottom-left"
	PosBottomRight LogoPosition = "bottom-right"
)

// SourceImage is a decoded input file plus the metadata later stages need.
type SourceImage struct {
	Path   string
	Pixels *image.NRGBA
	Mode   ColorMode
	// EXIF holds the raw TIFF payload lifted from a JPEG source, nil when
	// the source carried none.
	EXIF []byte
}

// TransformResult is the buffer produced by the geometry stage and passed
// through overlay and encoding.
type TransformResult struct {
	Pixels *image.NRGBA
	Mode   ColorMode
}

// LogoAsset is the decoded watermark image, loaded once per run and reused
// for every file in the batch.
type LogoAsset struct {
	Pixels *image.NRGBA
}

// OutputSpec describes how one processed file is encoded and named.
type OutputSpec struct {
	Basename  string
	Format    OutputFormat
	Quality   int
	Optimize  bool
	StripEXIF bool
}

// BatchReport aggregates per-file outcomes of a run.
type BatchReport struct {
	Attempted int
	Succeeded int
	Failed    int
}
