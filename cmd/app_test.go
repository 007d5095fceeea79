package cmd

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out

	base := []string{"rtw", "--env", filepath.Join(t.TempDir(), "missing.env")}
	err := app.Run(append(base, args...))
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "frames", "frame.png")

	_, err := runApp(t, "render",
		"--scene", "two-spheres",
		"--width", "8", "--height", "6",
		"--spp", "1", "--depth", "2",
		"--workers", "2", "--seed", "3",
		"--thumbnail", "4",
		"--out", outPath,
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, path := range []string{outPath, filepath.Join(dir, "frames", "frame-thumb.png")} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}
}

func TestRenderCommand_PPM(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frame.ppm")

	if _, err := runApp(t, "render", "-s", "cornell-box", "--width", "4", "--height", "4", "--spp", "1", "-o", outPath); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 4\n255\n") {
		t.Errorf("Expected a P3 header, got %q", string(data[:12]))
	}
}

func TestRenderCommand_TextureMax(t *testing.T) {
	dir := t.TempDir()
	texturePath := filepath.Join(dir, "earth.png")
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 90, B: 200, A: 255})
		}
	}
	file, err := os.Create(texturePath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
	file.Close()

	outPath := filepath.Join(dir, "earth-out.png")
	_, err = runApp(t, "render",
		"--scene", "earth",
		"--width", "8", "--height", "6", "--spp", "1",
		"--texture", texturePath, "--texture-max", "8",
		"--out", outPath,
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("Expected %s to exist: %v", outPath, err)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"zero width", []string{"--width", "0"}, config.ErrInvalidConfig},
		{"no samples", []string{"--spp", "0"}, config.ErrInvalidConfig},
		{"unknown scene", []string{"--scene", "teapot", "--width", "4", "--height", "4"}, scene.ErrUnknownScene},
		{"upload without bucket", []string{"--upload"}, config.ErrInvalidConfig},
		{"negative texture max", []string{"--texture-max", "-1"}, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--out", filepath.Join(dir, "x.png")}, tt.args...)
			_, err := runApp(t, args...)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	out, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected scene list to contain %s", name)
		}
	}
}
