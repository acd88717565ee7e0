package storage

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
)

type ImageProcessor struct {
	filter imaging.ResampleFilter
	fill   color.Color
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		filter: imaging.Lanczos,
		fill:   color.White,
	}
}

// Decode reads any registered raster format and returns it as opaque RGB.
// Alpha is dropped without blending, so transparent pixels keep whatever
// colour they carry.
func (p *ImageProcessor) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return toRGB(img), nil
}

// ResizeSmart returns an image of exactly width x height. With maintainAspect
// the source is scaled to fit and centred on a white canvas; otherwise it is
// stretched.
func (p *ImageProcessor) ResizeSmart(img image.Image, width, height int, maintainAspect bool) *image.NRGBA {
	if !maintainAspect {
		return imaging.Resize(img, width, height, p.filter)
	}

	newWidth, newHeight := FitDimensions(img.Bounds().Dx(), img.Bounds().Dy(), width, height)
	resized := imaging.Resize(img, newWidth, newHeight, p.filter)

	canvas := imaging.New(width, height, p.fill)
	offsetX, offsetY := (width-newWidth)/2, (height-newHeight)/2
	return imaging.Paste(canvas, resized, image.Pt(offsetX, offsetY))
}

// Thumbnail shrinks img to fit within maxSide x maxSide. Smaller images are
// returned unscaled.
func (p *ImageProcessor) Thumbnail(img image.Image, maxSide int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, maxSide, maxSide, p.filter)
}

func (p *ImageProcessor) EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return nil
}

// FitDimensions computes the size of a srcW x srcH image scaled to fit inside
// dstW x dstH. The side that touches the target edge is exact; the other is
// truncated toward zero and never less than one pixel.
func FitDimensions(srcW, srcH, dstW, dstH int) (int, int) {
	srcRatio := float64(srcW) / float64(srcH)
	dstRatio := float64(dstW) / float64(dstH)

	var w, h int
	if srcRatio > dstRatio {
		w = dstW
		h = int(float64(dstW) / srcRatio)
	} else {
		h = dstH
		w = int(float64(dstH) * srcRatio)
	}
	return max(w, 1), max(h, 1)
}

func toRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
