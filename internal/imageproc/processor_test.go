package imageproc

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func decodeJPEG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	return img
}

func TestOptimizeScalesDown(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.jpg")
	writePNG(t, src, 1600, 1200)

	require.NoError(t, Optimize(src, dst))

	out := decodeJPEG(t, dst)
	bounds := out.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())
}

func TestOptimizePreservesAspectRatio(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.jpg")
	writePNG(t, src, 2000, 500)

	require.NoError(t, Optimize(src, dst))

	out := decodeJPEG(t, dst)
	bounds := out.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
}

func TestOptimizeNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.jpg")
	writePNG(t, src, 320, 240)

	require.NoError(t, Optimize(src, dst))

	out := decodeJPEG(t, dst)
	bounds := out.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 240, bounds.Dy())
}

func TestOptimizeRejectsCorruptInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.jpg")
	dst := filepath.Join(dir, "out.jpg")
	require.NoError(t, os.WriteFile(src, []byte("definitely not an image"), 0o644))

	err := Optimize(src, dst)
	require.Error(t, err)

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "no output artifact may remain after a failed transcode")
}

func TestOptimizeMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Optimize(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.jpg"))
	require.Error(t, err)
}
