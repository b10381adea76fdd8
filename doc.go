// Package edgepreview renders camera frames into a preview surface with an
// edge overlay.
//
// Each capture callback hands over one planar YUV 4:2:0 frame. The
// Processor converts the cropped region to RGB, rotates it by 90° and
// downscales it by integer ratios straight into the surface's locked pixel
// buffer, then runs Canny edge detection over the result so that only the
// colored edges remain visible.
//
// # Getting Started
//
//	proc, err := edgepreview.NewProcessor(edgepreview.NewOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inside the capture callback:
//	summary, err := proc.ProcessSurface(src, surface)
//	if err != nil {
//	    // Drop the frame; the next callback tries again.
//	    return
//	}
//	fmt.Println(summary)
//
// # Core Types
//
//   - [Processor]: sequences the mapping and the edge overlay for one frame
//   - [Options]: edge detection parameters and backend selection
//   - [Surface]: the output surface lifecycle the processor drives
//   - [Summary]: diagnostic description of a processed frame
//
// The pixel work lives in the yuv, frame and edge packages, which can be
// used on their own. They never log; ProcessSurface logs through logrus at
// the surface boundary.
//
// # Concurrency
//
// Processing is synchronous and keeps no state between frames. A Processor
// only holds its options and can be shared between goroutines, provided
// each call gets its own destination buffer.
package edgepreview
