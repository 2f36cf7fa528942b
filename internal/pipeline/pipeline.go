// Package pipeline implements the per-file transform chain: decode,
// geometry, logo overlay, encode. One pipeline value serves a whole batch.
package pipeline

import (
	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// Pipeline chains the per-file stages.
type Pipeline struct {
	Geometry Transform
	Overlay  Overlay
}

// Process runs one source file through every stage and returns the encoded
// output bytes.
func (p *Pipeline) Process(path string, spec domain.OutputSpec) ([]byte, error) {
	src, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	res, err := p.Geometry.Apply(src)
	if err != nil {
		return nil, err
	}
	res = p.Overlay.Apply(res)
	return Encode(res, spec, src.EXIF)
}
