// Package imageproc normalizes uploaded photos: everything that survives
// validation is decoded, resized to fit the catalog card, and re-encoded
// as JPEG so the uploads directory holds exactly one predictable format.
package imageproc

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // imaging covers jpeg/png/gif; webp needs registering
)

const (
	maxWidth  = 800
	maxHeight = 600
	quality   = 80
)

// Ext is the extension every processed image ends up with.
const Ext = ".jpg"

// Optimize re-encodes the image at srcPath into dstPath, scaled down to
// fit 800x600 (never upscaled), JPEG quality 80. On failure the partial
// output is removed; the source file is left for the caller to clean up.
func Optimize(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	if err := imaging.Save(img, dstPath, imaging.JPEGQuality(quality)); err != nil {
		if rmErr := os.Remove(dstPath); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("failed to encode image: %w (leftover output not removed: %v)", err, rmErr)
		}
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
