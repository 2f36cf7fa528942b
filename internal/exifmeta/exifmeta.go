// Package exifmeta lifts EXIF blocks out of JPEG sources and splices them
// back into re-encoded output. The standard library encoders emit no
// metadata, so passthrough has to carry the APP1 segment across manually.
package exifmeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rwcarlsen/goexif/exif"
)

// exifHeader prefixes the TIFF payload inside a JPEG APP1 segment.
var exifHeader = []byte("Exif\x00\x00")

const (
	orientationTag = 0x0112
	typeShort      = 3
)

// Extract returns the raw TIFF payload of the EXIF block in r, or nil when
// the stream carries none.
func Extract(r io.Reader) []byte {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}
	return bytes.TrimPrefix(x.Raw, exifHeader)
}

// ResetOrientation returns a copy of the TIFF payload with the orientation
// tag forced to 1. The pipeline bakes rotation into the pixels, so a stale
// rotation flag would make viewers rotate the result a second time.
// Malformed payloads come back unchanged.
func ResetOrientation(raw []byte) []byte {
	out := append([]byte(nil), raw...)
	tif := bytes.TrimPrefix(out, exifHeader)
	if len(tif) < 8 {
		return out
	}

	var bo binary.ByteOrder
	switch {
	case tif[0] == 'I' && tif[1] == 'I':
		bo = binary.LittleEndian
	case tif[0] == 'M' && tif[1] == 'M':
		bo = binary.BigEndian
	default:
		return out
	}

	ifdOff := int(bo.Uint32(tif[4:8]))
	if ifdOff < 0 || ifdOff+2 > len(tif) {
		return out
	}
	count := int(bo.Uint16(tif[ifdOff : ifdOff+2]))
	base := ifdOff + 2
	for i := 0; i < count; i++ {
		entry := base + i*12
		if entry+12 > len(tif) {
			return out
		}
		if bo.Uint16(tif[entry:entry+2]) != orientationTag {
			continue
		}
		if bo.Uint16(tif[entry+2:entry+4]) != typeShort {
			return out
		}
		// SHORT values live inline in the first two bytes of the value field.
		bo.PutUint16(tif[entry+8:entry+10], 1)
		return out
	}
	return out
}

// Embed returns jpegData with an APP1 EXIF segment spliced in directly after
// the SOI marker. The payload must fit a single segment.
func Embed(jpegData, raw []byte) ([]byte, error) {
	if len(jpegData) < 2 || jpegData[0] != 0xff || jpegData[1] != 0xd8 {
		return nil, errors.New("exifmeta: not a jpeg stream")
	}
	payload := raw
	if !bytes.HasPrefix(payload, exifHeader) {
		payload = append(append([]byte(nil), exifHeader...), raw...)
	}
	segLen := len(payload) + 2
	if segLen > 0xffff {
		return nil, fmt.Errorf("exifmeta: payload of %d bytes exceeds segment limit", len(raw))
	}

	out := make([]byte, 0, len(jpegData)+4+len(payload))
	out = append(out, jpegData[:2]...)
	out = append(out, 0xff, 0xe1, byte(segLen>>8), byte(segLen))
	out = append(out, payload...)
	out = append(out, jpegData[2:]...)
	return out, nil
}
