// Package surface provides an in-memory output surface.
//
// Memory follows the lifecycle of a native window: it must be acquired
// before its back buffer can be locked, only one lock can be held at a
// time, and unlocking posts the back buffer as the visible frame.
package surface

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/opd-ai/edgepreview/frame"
)

// Lifecycle errors.
var (
	// ErrNotAcquired indicates Lock was called without a reference.
	ErrNotAcquired = errors.New("surface not acquired")

	// ErrAlreadyLocked indicates the back buffer is already locked.
	ErrAlreadyLocked = errors.New("surface already locked")

	// ErrNotLocked indicates UnlockAndPost was called without a lock.
	ErrNotLocked = errors.New("surface not locked")
)

// Memory is a double-buffered surface backed by process memory.
type Memory struct {
	mu     sync.Mutex
	back   *frame.Buffer
	front  *frame.Buffer
	refs   int
	locked bool
	posted int
}

// NewMemory creates a surface whose back buffer has the given geometry.
func NewMemory(width, height, stride int, format frame.PixelFormat) (*Memory, error) {
	back := frame.NewBuffer(width, height, stride, format)
	if err := back.Validate(); err != nil {
		return nil, fmt.Errorf("surface geometry: %w", err)
	}
	return &Memory{
		back:  back,
		front: frame.NewBuffer(width, height, stride, format),
	}, nil
}

// Acquire takes a reference on the surface.
func (m *Memory) Acquire() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs++
	return nil
}

// Release drops a reference. Releasing while locked abandons the lock
// without posting.
func (m *Memory) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.refs == 0 {
		return
	}
	m.refs--
	if m.refs == 0 {
		m.locked = false
	}
}

// Lock returns the back buffer for writing.
func (m *Memory) Lock() (*frame.Buffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.refs == 0 {
		return nil, ErrNotAcquired
	}
	if m.locked {
		return nil, ErrAlreadyLocked
	}
	m.locked = true
	return m.back, nil
}

// UnlockAndPost makes the back buffer the visible frame.
func (m *Memory) UnlockAndPost() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked {
		return ErrNotLocked
	}
	m.locked = false
	copy(m.front.Pix, m.back.Pix)
	m.posted++
	return nil
}

// Refs returns the number of outstanding references.
func (m *Memory) Refs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refs
}

// Locked reports whether the back buffer is currently locked.
func (m *Memory) Locked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locked
}

// Posted returns how many frames have been posted.
func (m *Memory) Posted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posted
}

// Front returns a copy of the last posted frame.
func (m *Memory) Front() *frame.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := *m.front
	b.Pix = append([]uint32(nil), m.front.Pix...)
	return &b
}

// Image returns the last posted frame as an *image.RGBA.
func (m *Memory) Image() *image.RGBA {
	return m.Front().Image()
}
