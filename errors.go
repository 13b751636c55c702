package rcd

import "errors"

var (
	// ErrSignature is returned when the file header is not a supported
	// RCD signature and version.
	ErrSignature = errors.New("rcd: unsupported file signature")

	// ErrIntegrity is returned when the blocks do not exactly cover the
	// file.
	ErrIntegrity = errors.New("rcd: block sizes do not match file size")

	// ErrBlockLength is returned for a block with an empty payload.
	ErrBlockLength = errors.New("rcd: invalid block length")
)
