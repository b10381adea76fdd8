package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/edgepreview"
	"github.com/opd-ai/edgepreview/edge"
	"github.com/opd-ai/edgepreview/frame"
	"github.com/opd-ai/edgepreview/framefile"
	"github.com/opd-ai/edgepreview/surface"
)

// backends lists the edge detectors selectable with -backend.
var backends = map[string]edge.Backend{
	"native": edge.Native{},
}

// CLI configuration
type CLIConfig struct {
	input     string
	output    string
	width     int
	height    int
	layout    string
	crop      string
	dstWidth  int
	dstHeight int
	dstStride int
	format    string
	low       int
	ratio     int
	kernel    int
	backend   string
	noEdges   bool
	logLevel  string
	help      bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags() *CLIConfig {
	config := &CLIConfig{}
	defaults := edge.DefaultParams()

	// Input
	flag.StringVar(&config.input, "in", "", "Raw YUV 4:2:0 frame dump (.zst is decompressed)")
	flag.IntVar(&config.width, "width", 0, "Frame width in pixels")
	flag.IntVar(&config.height, "height", 0, "Frame height in pixels")
	flag.StringVar(&config.layout, "layout", "nv21", "Dump layout (i420, nv12, nv21)")
	flag.StringVar(&config.crop, "crop", "", "Crop rectangle top,bottom,left,right (default: full frame)")

	// Output surface
	flag.StringVar(&config.output, "out", "", "Output image (.png, .bmp, .tif)")
	flag.IntVar(&config.dstWidth, "dst-width", 0, "Surface width (default: crop height)")
	flag.IntVar(&config.dstHeight, "dst-height", 0, "Surface height (default: crop width)")
	flag.IntVar(&config.dstStride, "dst-stride", 0, "Surface row stride in pixels (default: surface width)")
	flag.StringVar(&config.format, "format", "rgba", "Surface pixel format (rgba, rgbx)")

	// Edge overlay
	flag.IntVar(&config.low, "low", defaults.LowThreshold, "Canny low threshold")
	flag.IntVar(&config.ratio, "ratio", defaults.Ratio, "Canny high/low threshold ratio")
	flag.IntVar(&config.kernel, "kernel", defaults.KernelSize, "Sobel aperture (3, 5, 7)")
	flag.StringVar(&config.backend, "backend", "native", "Edge backend ("+strings.Join(backendNames(), ", ")+")")
	flag.BoolVar(&config.noEdges, "no-edges", false, "Show the plain color image")

	// Logging configuration
	flag.StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Help
	flag.BoolVar(&config.help, "help", false, "Show help message")

	flag.Parse()
	return config
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("Edge Preview")
	fmt.Println("============")
	fmt.Println()
	fmt.Println("Renders a camera frame dump the way the preview surface shows it:")
	fmt.Println("cropped, rotated 90 degrees, scaled and optionally reduced to its")
	fmt.Println("colored edges.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s -in frame.yuv -width W -height H [options]\n", os.Args[0])
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  # Edge preview of a 640x480 NV21 capture\n")
	fmt.Printf("  %s -in frame.nv21 -width 640 -height 480 -out preview.png\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Center crop of a compressed I420 dump, no edges\n")
	fmt.Printf("  %s -in frame.yuv.zst -width 1280 -height 720 -layout i420 -crop 60,660,160,1120 -no-edges -out crop.bmp\n", os.Args[0])
}

// parseCrop parses "top,bottom,left,right". An empty string selects the
// full width x height frame.
func parseCrop(s string, width, height int) (frame.CropRect, error) {
	if strings.TrimSpace(s) == "" {
		return frame.FullCrop(width, height), nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return frame.CropRect{}, fmt.Errorf("crop must be top,bottom,left,right, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return frame.CropRect{}, fmt.Errorf("crop value %q: %w", p, err)
		}
		v[i] = n
	}
	return frame.CropRect{Top: v[0], Bottom: v[1], Left: v[2], Right: v[3]}, nil
}

// parseFormat maps the -format flag to a surface pixel format.
func parseFormat(s string) (frame.PixelFormat, error) {
	switch strings.ToLower(s) {
	case "rgba":
		return frame.FormatRGBA8888, nil
	case "rgbx":
		return frame.FormatRGBX8888, nil
	default:
		return frame.FormatUnknown, fmt.Errorf("unsupported pixel format %q", s)
	}
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.input == "" {
		return fmt.Errorf("input frame is required")
	}

	if config.width <= 0 || config.height <= 0 {
		return fmt.Errorf("frame width and height must be positive")
	}

	if _, err := framefile.ParseLayout(config.layout); err != nil {
		return err
	}

	if _, err := parseCrop(config.crop, config.width, config.height); err != nil {
		return err
	}

	if config.dstWidth < 0 || config.dstHeight < 0 || config.dstStride < 0 {
		return fmt.Errorf("surface dimensions cannot be negative")
	}

	if config.dstStride > 0 && config.dstWidth > 0 && config.dstStride < config.dstWidth {
		return fmt.Errorf("surface stride %d is smaller than width %d", config.dstStride, config.dstWidth)
	}

	if _, err := parseFormat(config.format); err != nil {
		return err
	}

	if config.output != "" {
		if _, err := framefile.FormatFromPath(config.output); err != nil {
			return err
		}
	}

	if _, ok := backends[config.backend]; !ok {
		return fmt.Errorf("unknown edge backend %q", config.backend)
	}

	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return err
	}

	return nil
}

// createOptions converts CLI configuration to processor options.
func createOptions(cliConfig *CLIConfig) *edgepreview.Options {
	options := edgepreview.NewOptions()
	options.EdgesEnabled = !cliConfig.noEdges
	options.Edge = edge.Params{
		LowThreshold: cliConfig.low,
		Ratio:        cliConfig.ratio,
		KernelSize:   cliConfig.kernel,
	}
	options.Backend = backends[cliConfig.backend]
	return options
}

// surfaceGeometry resolves the surface size. Unset dimensions default to
// the rotated crop so the preview is drawn at 1:1.
func surfaceGeometry(cliConfig *CLIConfig, crop frame.CropRect) (width, height, stride int) {
	width, height, stride = cliConfig.dstWidth, cliConfig.dstHeight, cliConfig.dstStride
	if width == 0 {
		width = max(crop.Height(), 0)
	}
	if height == 0 {
		height = max(crop.Width(), 0)
	}
	if stride == 0 {
		stride = width
	}
	return width, height, stride
}

// run executes one frame through the pipeline.
func run(cliConfig *CLIConfig) (*edgepreview.Summary, error) {
	layout, err := framefile.ParseLayout(cliConfig.layout)
	if err != nil {
		return nil, err
	}
	crop, err := parseCrop(cliConfig.crop, cliConfig.width, cliConfig.height)
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(cliConfig.format)
	if err != nil {
		return nil, err
	}

	src, err := framefile.OpenFrame(cliConfig.input, cliConfig.width, cliConfig.height, layout)
	if err != nil {
		return nil, err
	}
	src.Crop = crop

	width, height, stride := surfaceGeometry(cliConfig, crop)
	out, err := surface.NewMemory(width, height, stride, format)
	if err != nil {
		return nil, err
	}

	processor, err := edgepreview.NewProcessor(createOptions(cliConfig))
	if err != nil {
		return nil, err
	}

	summary, err := processor.ProcessSurface(src, out)
	if err != nil {
		return nil, err
	}

	if cliConfig.output != "" {
		if err := framefile.SaveImage(cliConfig.output, out.Image()); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// main is the entry point for the edgepreview command.
func main() {
	// Parse command-line flags
	cliConfig := parseCLIFlags()

	// Show help if requested
	if cliConfig.help {
		printUsage()
		os.Exit(0)
	}

	// Validate configuration
	if err := validateCLIConfig(cliConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	level, _ := logrus.ParseLevel(cliConfig.logLevel)
	logrus.SetLevel(level)

	summary, err := run(cliConfig)
	if summary != nil {
		fmt.Println(summary.String())
	}
	if err != nil {
		if errors.Is(err, edge.ErrInvalidParams) {
			fmt.Fprintf(os.Stderr, "Invalid edge parameters: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
		}
		os.Exit(1)
	}
}
