package domain

import "errors"

var (
	ErrNoOutputMode      = errors.New("no output mode configured")
	ErrNoInputs          = errors.New("no supported input files")
	ErrDecodeFailed      = errors.New("decode failed")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrBadRenamePattern  = errors.New("invalid rename pattern")
)
