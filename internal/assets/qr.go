package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// GenerateFollowQR renders a QR code pointing at the channel's profile and
// writes it as a PNG under dir, scaled to size pixels. The returned path
// can be attached to the bundle as the outro follow asset.
func GenerateFollowQR(handle string, size int, dir string) (string, error) {
	if handle == "" {
		return "", fmt.Errorf("empty channel handle")
	}
	if size <= 0 {
		size = 256
	}

	url := "https://www.tiktok.com/@" + strings.TrimPrefix(handle, "@")
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encoding follow QR: %w", err)
	}

	src := qr.Image(size)
	dst := src
	if src.Bounds().Dx() != size {
		// qr.Image rounds to module size, rescale to the exact target
		scaled := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
		dst = scaled
	}

	name := fmt.Sprintf("follow-%s.png", strings.TrimPrefix(handle, "@"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("writing follow QR: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return "", fmt.Errorf("encoding follow QR png: %w", err)
	}
	return path, nil
}
