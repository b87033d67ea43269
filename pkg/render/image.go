// pkg/render/image.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// ImageSurface draws lines into an offscreen NRGBA image. The designer
// uses it for course snapshots; tests use it to inspect raster output.
type ImageSurface struct {
	img        *image.NRGBA
	background color.RGBA
}

// NewImageSurface creates an image surface of the given pixel size
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		img:        image.NewNRGBA(image.Rect(0, 0, width, height)),
		background: color.RGBA{R: 10, G: 10, B: 15, A: 255},
	}
	s.Clear()
	return s
}

// Size implements Surface
func (s *ImageSurface) Size() (int, int) {
	bounds := s.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Clear implements Surface, filling with the background color
func (s *ImageSurface) Clear() {
	bounds := s.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s.img.SetNRGBA(x, y, color.NRGBA{
				R: s.background.R, G: s.background.G, B: s.background.B, A: s.background.A,
			})
		}
	}
}

// DrawLine implements Surface; out-of-bounds pixels are clipped
func (s *ImageSurface) DrawLine(from, to ScreenPoint, lineColor color.RGBA) {
	bounds := s.img.Bounds()
	plotLine(from, to, func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			s.img.SetNRGBA(x, y, color.NRGBA{
				R: lineColor.R, G: lineColor.G, B: lineColor.B, A: lineColor.A,
			})
		}
	})
}

// Present implements Surface; offscreen images have nothing to flip
func (s *ImageSurface) Present() {}

// Image returns the backing image
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// EncodeWebP writes the current image as lossless WebP
func (s *ImageSurface) EncodeWebP(w io.Writer) error {
	if err := nativewebp.Encode(w, s.img, nil); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}

// SaveWebP writes the current image to a WebP file
func (s *ImageSurface) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := s.EncodeWebP(f); err != nil {
		return err
	}
	return f.Close()
}
