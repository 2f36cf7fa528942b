// Package zip bundles a run's outputs into a single archive for handoff.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one processed image to include in the archive.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive renders entries into an in-memory zip, preserving their order.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Filename)
		if err != nil {
			return nil, fmt.Errorf("zip: add %s: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: finalize: %w", err)
	}
	return buf.Bytes(), nil
}
