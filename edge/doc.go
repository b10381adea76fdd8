// Package edge detects edges in a rendered preview frame and keeps only
// the edge pixels in color.
//
// The heavy lifting is behind the Backend capability interface, which has
// exactly two operations: converting packed RGB(X) pixels to a single
// channel, and turning that channel into a binary edge mask (3x3 blur
// followed by Canny hysteresis). Native is a dependency-free
// implementation; building with the gocv tag adds CV, which hands both
// operations to OpenCV.
//
// Overlay composes the two:
//
//	overlay := edge.NewOverlay(nil, edge.DefaultParams())
//	if err := overlay.Apply(buf, width, height); err != nil {
//	    return fmt.Errorf("edge overlay failed: %w", err)
//	}
//
// After Apply, pixels on a detected edge keep their original color and all
// other pixels in the region are zero (fully transparent).
package edge
