package framefile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownImageFormat indicates an unsupported output image format.
var ErrUnknownImageFormat = errors.New("unknown image format")

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("extension %q: %w", ext, ErrUnknownImageFormat)
	}
}

// WriteImage encodes img to w as png, bmp or tiff.
func WriteImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownImageFormat)
	}
}

// SaveImage writes img to path in the format implied by its extension.
func SaveImage(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close image: %w", cerr)
		}
	}()

	if err := WriteImage(file, img, format); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "SaveImage",
		"path":     path,
		"format":   format,
		"width":    img.Bounds().Dx(),
		"height":   img.Bounds().Dy(),
	}).Debug("Preview image written")
	return nil
}
