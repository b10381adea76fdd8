package edgepreview

import "errors"

// Sentinel errors for surface handling.
// These errors enable reliable error classification using errors.Is().
// Source and destination validation errors come from the frame package.
var (
	// ErrSurfaceUnavailable indicates the output surface is missing or
	// could not be acquired.
	ErrSurfaceUnavailable = errors.New("output surface unavailable")

	// ErrSurfaceLock indicates the output surface could not be locked for
	// writing.
	ErrSurfaceLock = errors.New("output surface could not be locked")

	// ErrSurfacePost indicates the rendered buffer could not be unlocked
	// and posted.
	ErrSurfacePost = errors.New("output surface could not be posted")
)
