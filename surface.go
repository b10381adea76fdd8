package edgepreview

import "github.com/opd-ai/edgepreview/frame"

// Surface is an output surface with an exclusive, lockable pixel buffer.
//
// The processor drives it in the order Acquire, Lock, UnlockAndPost,
// Release. Release is always called once Acquire has succeeded, including
// on failure paths. The buffer returned by Lock is only valid until
// UnlockAndPost.
type Surface interface {
	// Acquire takes a reference on the surface.
	Acquire() error
	// Lock returns the back buffer for writing.
	Lock() (*frame.Buffer, error)
	// UnlockAndPost releases the back buffer and presents it.
	UnlockAndPost() error
	// Release drops the reference taken by Acquire.
	Release()
}
