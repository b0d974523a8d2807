package trend

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/psykhi/wordclouds"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
)

// Rendering defaults.
const (
	DefaultCloudSize = 1024
	jpegQuality      = 90

	// Fixed hue family for the cloud palette; only lightness varies.
	cloudHue           = 230
	cloudLightnessLow  = 20
	cloudLightnessHigh = 60
)

// CloudConfig locates the rendering assets and the output directory.
type CloudConfig struct {
	// OutDir receives the rendered JPEG; created if absent.
	OutDir string
	// MaskPath is the shape mask image. Required.
	MaskPath string
	// FontPath is the TTF font used for the words. Required.
	FontPath string
	// Width and Height of the canvas; DefaultCloudSize when zero.
	Width  int
	Height int
}

// RenderCloud draws a frequency-weighted word cloud over the trending set
// and writes it as <OutDir>/YYYY-MM-DD-HHMMSS.jpg, returning the written
// path. Both rendering assets are hard preconditions; a missing mask or
// font surfaces internalerr.ErrMissingAsset.
func RenderCloud(trending []DiffEntry, cfg CloudConfig, now time.Time) (string, error) {
	if _, err := os.Stat(cfg.MaskPath); err != nil {
		return "", fmt.Errorf("%w: mask image %s", internalerr.ErrMissingAsset, cfg.MaskPath)
	}
	if _, err := os.Stat(cfg.FontPath); err != nil {
		return "", fmt.Errorf("%w: font %s", internalerr.ErrMissingAsset, cfg.FontPath)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = DefaultCloudSize
	}
	if height <= 0 {
		height = DefaultCloudSize
	}

	freqs := make(map[string]int, len(trending))
	for _, e := range trending {
		weight := e.Diff
		if weight < 1 {
			weight = 1
		}
		freqs[e.Term] = weight
	}

	boxes := wordclouds.Mask(cfg.MaskPath, width, height, color.RGBA{R: 0, G: 0, B: 0, A: 0})

	cloud := wordclouds.NewWordcloud(freqs,
		wordclouds.FontFile(cfg.FontPath),
		wordclouds.FontMaxSize(width/4),
		wordclouds.FontMinSize(12),
		wordclouds.Colors(palette(8)),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Width(width),
		wordclouds.Height(height),
		wordclouds.MaskBoxes(boxes),
	)
	img := cloud.Draw()

	path := filepath.Join(cfg.OutDir, now.Format("2006-01-02-150405")+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create cloud file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode cloud: %w", err)
	}
	return path, nil
}

// palette builds n colors of the fixed hue with randomized lightness.
func palette(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		lightness := cloudLightnessLow + rand.Intn(cloudLightnessHigh-cloudLightnessLow)
		out[i] = hsl(cloudHue, 100, lightness)
	}
	return out
}

// hsl converts hue [0,360), saturation and lightness percentages to RGBA.
func hsl(h, s, l int) color.RGBA {
	sf := float64(s) / 100
	lf := float64(l) / 100

	c := (1 - math.Abs(2*lf-1)) * sf
	x := c * (1 - math.Abs(math.Mod(float64(h)/60, 2)-1))
	m := lf - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
