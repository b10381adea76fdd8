// Package main provides the edgepreview command.
//
// edgepreview pushes one raw YUV 4:2:0 frame dump through the preview
// pipeline: crop, rotate and scale into an in-memory surface, optionally
// replace it with its colored Canny edges, then write the posted frame as
// an image and print the frame summary.
package main
