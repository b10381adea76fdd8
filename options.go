package edgepreview

import (
	"fmt"

	"github.com/opd-ai/edgepreview/edge"
)

// Options configures a Processor.
type Options struct {
	// EdgesEnabled runs the edge overlay after mapping. When false the
	// surface shows the plain rotated color image.
	EdgesEnabled bool
	// Edge holds the Canny thresholds and aperture.
	Edge edge.Params
	// Backend performs grayscale conversion and edge detection. Nil
	// selects edge.Native.
	Backend edge.Backend
}

// NewOptions returns the preview defaults: edges enabled with thresholds
// (30, 3, 3) on the pure Go backend.
func NewOptions() *Options {
	return &Options{
		EdgesEnabled: true,
		Edge:         edge.DefaultParams(),
		Backend:      edge.Native{},
	}
}

// Validate checks the edge parameters when the overlay is enabled.
func (o *Options) Validate() error {
	if !o.EdgesEnabled {
		return nil
	}
	if err := o.Edge.Validate(); err != nil {
		return fmt.Errorf("edge options: %w", err)
	}
	return nil
}
