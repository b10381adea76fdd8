package edgepreview

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/edgepreview/edge"
	"github.com/opd-ai/edgepreview/frame"
)

// Processor runs the per-frame preview pipeline:
//
//	YUV420 planes → rotate/crop/scale + RGB conversion → edge overlay → surface
//
// It keeps no state between frames.
type Processor struct {
	options *Options
	overlay *edge.Overlay
}

// NewProcessor creates a processor. Nil options select NewOptions().
func NewProcessor(options *Options) (*Processor, error) {
	if options == nil {
		options = NewOptions()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	opts := *options
	return &Processor{
		options: &opts,
		overlay: edge.NewOverlay(opts.Backend, opts.Edge),
	}, nil
}

// Options returns a copy of the processor's options.
func (p *Processor) Options() Options {
	return *p.options
}

// Process renders src into dst and, when enabled, applies the edge overlay
// to the written region. Inputs are validated before anything is written.
// Degenerate geometry yields an empty summary and no writes.
func (p *Processor) Process(src *frame.SourceFrame, dst *frame.Buffer) (*Summary, error) {
	t, err := frame.Map(src, dst)
	if err != nil {
		return nil, err
	}
	summary := newSummary(src, dst, t)

	if !p.options.EdgesEnabled || t.Empty() {
		return summary, nil
	}
	if err := p.overlay.Apply(dst, t.DestCols(), t.DestRows()); err != nil {
		return nil, fmt.Errorf("edge overlay failed: %w", err)
	}
	summary.EdgesApplied = true
	return summary, nil
}

// ProcessSurface renders src into the surface's back buffer and posts it.
//
// The source is validated before the surface is touched, so an unusable
// frame never acquires or locks anything. Once acquired, the surface is
// released on every return path. A failure after locking still unlocks the
// buffer so the surface is not left wedged.
func (p *Processor) ProcessSurface(src *frame.SourceFrame, s Surface) (*Summary, error) {
	if err := src.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Processor.ProcessSurface",
			"error":    err.Error(),
		}).Warn("Dropping frame with unusable source planes")
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("surface cannot be nil: %w", ErrSurfaceUnavailable)
	}

	if err := s.Acquire(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Processor.ProcessSurface",
			"error":    err.Error(),
		}).Error("Failed to acquire output surface")
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	defer s.Release()

	buf, err := s.Lock()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Processor.ProcessSurface",
			"error":    err.Error(),
		}).Error("Failed to lock output surface")
		return nil, fmt.Errorf("%w: %w", ErrSurfaceLock, err)
	}

	summary, procErr := p.Process(src, buf)
	if err := s.UnlockAndPost(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Processor.ProcessSurface",
			"error":    err.Error(),
		}).Error("Failed to unlock and post output surface")
		if procErr == nil {
			return nil, fmt.Errorf("%w: %w", ErrSurfacePost, err)
		}
	}
	if procErr != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Processor.ProcessSurface",
			"error":    procErr.Error(),
		}).Error("Frame processing failed")
		return nil, procErr
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Processor.ProcessSurface",
		"buf_width":  summary.BufferWidth,
		"buf_height": summary.BufferHeight,
		"out_width":  summary.OutWidth,
		"out_height": summary.OutHeight,
		"edges":      summary.EdgesApplied,
	}).Debug("Frame posted to surface")

	return summary, nil
}
