package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Namer assigns output basenames for one batch. It remembers every name it
// hands out so two sources with the same stem never collide on disk.
type Namer struct {
	pattern string
	ext     string
	taken   map[string]bool
}

// NewNamer builds a Namer for the given rename pattern and output extension.
// An empty pattern keeps the source stems.
func NewNamer(pattern, ext string) *Namer {
	return &Namer{pattern: pattern, ext: ext, taken: make(map[string]bool)}
}

// Next returns the output filename for the index-th source file (1-based).
// The second result reports that the rename pattern failed and a sequential
// fallback name was used instead.
func (n *Namer) Next(index int, srcPath string) (string, bool) {
	base := filepath.Base(srcPath)
	stem := norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))

	name := stem
	fellBack := false
	if n.pattern != "" {
		formatted, err := FormatPattern(n.pattern, index, stem)
		if err != nil {
			name = fmt.Sprintf("img_%03d", index)
			fellBack = true
		} else {
			name = formatted
		}
	}

	name = n.dedupe(name)
	n.taken[name] = true
	return name + "." + n.ext, fellBack
}

// dedupe appends _1, _2, ... until the candidate is unused.
func (n *Namer) dedupe(name string) string {
	if !n.taken[name] {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !n.taken[candidate] {
			return candidate
		}
	}
}
