//go:build gocv

package main

import "github.com/opd-ai/edgepreview/edge"

func init() {
	backends["cv"] = edge.CV{}
}
