// Package limits provides centralized frame size constants and validation
// functions for untrusted frame input.
//
// # Frame Size Hierarchy
//
//   - MaxFrameDimension (8192 pixels): the largest accepted width or height,
//     enough for an 8K sensor in either orientation.
//
//   - MaxFramePixels (64 megapixels): the largest accepted luma plane.
//
//   - MaxFrameDumpBytes: the largest raw YUV 4:2:0 dump, one full luma
//     plane plus two quarter-size chroma planes at MaxFramePixels. It also
//     caps decompression memory for compressed dumps.
//
// # Validation Functions
//
//	if err := limits.ValidateFrameSize(width, height); err != nil {
//	    return fmt.Errorf("frame header rejected: %w", err)
//	}
//
// Errors wrap ErrFrameEmpty or ErrFrameTooLarge for errors.Is checks.
package limits
