package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrBufferSize is returned when a pixel buffer does not match its dimensions
var ErrBufferSize = errors.New("pixel buffer does not match image size")

func checkBuffer(buf []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(buf) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(buf), width, height)
	}
	return nil
}

// EncodePNG writes an RGBA8 buffer as a PNG image
func EncodePNG(w io.Writer, buf []byte, width, height int) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}
	if err := png.Encode(w, renderer.ToImage(buf, width, height)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// EncodePPM writes an RGBA8 buffer as a plain-text (P3) PPM image, dropping alpha
func EncodePPM(w io.Writer, buf []byte, width, height int) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for i := 0; i < len(buf); i += 4 {
		fmt.Fprintf(bw, "%d %d %d\n", buf[i], buf[i+1], buf[i+2])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ppm: %w", err)
	}
	return nil
}

// Encode writes the buffer in the format named by ext ("png" or "ppm", with or without a dot)
func Encode(w io.Writer, ext string, buf []byte, width, height int) error {
	switch normalizeExt(ext) {
	case "png":
		return EncodePNG(w, buf, width, height)
	case "ppm":
		return EncodePPM(w, buf, width, height)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ContentType returns the MIME type for a supported extension
func ContentType(ext string) string {
	switch normalizeExt(ext) {
	case "png":
		return "image/png"
	case "ppm":
		return "image/x-portable-pixmap"
	}
	return "application/octet-stream"
}

// WriteFile encodes the buffer to path, choosing the format from the file extension.
// Parent directories are created as needed.
func WriteFile(path string, buf []byte, width, height int) error {
	ext := filepath.Ext(path)
	if normalizeExt(ext) != "png" && normalizeExt(ext) != "ppm" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(file, ext, buf, width, height); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteImage writes img to path as a PNG
func WriteImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return file.Close()
}

// Thumbnail scales img down to maxWidth, keeping the aspect ratio.
// Images already narrow enough are returned unchanged.
func Thumbnail(img image.Image, maxWidth uint) image.Image {
	if maxWidth == 0 || uint(img.Bounds().Dx()) <= maxWidth {
		return img
	}
	return resize.Resize(maxWidth, 0, img, resize.Lanczos3)
}

// ThumbnailPath returns the sibling path used for a render's thumbnail
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-thumb.png"
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
