package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/storage"
)

var red = color.NRGBA{R: 255, A: 255}

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

func isRedish(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xe000 && g < 0x2000 && b < 0x2000
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		wantW, wantH           int
	}{
		{"wider source fills width", 4000, 1000, 1920, 1080, 1920, 480},
		{"taller source fills height", 3000, 2000, 1920, 1080, 1620, 1080},
		{"equal ratio fills both", 1920, 1080, 1920, 1080, 1920, 1080},
		{"portrait into portrait", 1000, 1000, 375, 667, 375, 375},
		{"odd difference truncates", 101, 100, 50, 50, 50, 49},
		{"extreme ratio keeps one pixel", 10000, 1, 10, 10, 10, 1},
		{"upscale small source", 10, 20, 1024, 768, 384, 768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := storage.FitDimensions(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestImageProcessor_ResizeSmart(t *testing.T) {
	p := storage.NewImageProcessor()

	t.Run("output always matches the target size", func(t *testing.T) {
		sources := [][2]int{{3000, 2000}, {2000, 3000}, {101, 100}, {1, 1}, {640, 480}, {17, 931}}
		targets := [][2]int{{1920, 1080}, {1024, 768}, {375, 667}, {50, 50}}

		for _, src := range sources {
			img := solid(src[0], src[1], red)
			for _, dst := range targets {
				out := p.ResizeSmart(img, dst[0], dst[1], true)
				assert.Equal(t, dst[0], out.Bounds().Dx(), "src %v dst %v", src, dst)
				assert.Equal(t, dst[1], out.Bounds().Dy(), "src %v dst %v", src, dst)
			}
		}
	})

	t.Run("3000x2000 onto laptop pads 150px on each side", func(t *testing.T) {
		out := p.ResizeSmart(solid(3000, 2000, red), 1920, 1080, true)

		require.Equal(t, image.Rect(0, 0, 1920, 1080), out.Bounds())
		assert.True(t, isWhite(out.At(0, 540)))
		assert.True(t, isWhite(out.At(149, 540)))
		assert.True(t, isRedish(out.At(150, 540)))
		assert.True(t, isRedish(out.At(1769, 540)))
		assert.True(t, isWhite(out.At(1770, 540)))
		assert.True(t, isWhite(out.At(1919, 540)))
		assert.True(t, isRedish(out.At(960, 0)))
		assert.True(t, isRedish(out.At(960, 1079)))
	})

	t.Run("odd padding follows floor division", func(t *testing.T) {
		out := p.ResizeSmart(solid(101, 100, red), 50, 50, true)

		// body is 50x49 pasted at y=0, leaving one white row at the bottom
		assert.True(t, isRedish(out.At(25, 0)))
		assert.True(t, isRedish(out.At(25, 48)))
		assert.True(t, isWhite(out.At(25, 49)))
	})

	t.Run("letterboxes a wide source top and bottom", func(t *testing.T) {
		out := p.ResizeSmart(solid(400, 100, red), 200, 200, true)

		// body 200x50 at y=(200-50)/2=75
		assert.True(t, isWhite(out.At(100, 74)))
		assert.True(t, isRedish(out.At(100, 75)))
		assert.True(t, isRedish(out.At(100, 124)))
		assert.True(t, isWhite(out.At(100, 125)))
	})

	t.Run("stretch ignores aspect ratio", func(t *testing.T) {
		out := p.ResizeSmart(solid(3000, 2000, red), 375, 667, false)

		require.Equal(t, image.Rect(0, 0, 375, 667), out.Bounds())
		assert.True(t, isRedish(out.At(0, 0)))
		assert.True(t, isRedish(out.At(374, 666)))
	})

	t.Run("resized content keeps source aspect within a pixel", func(t *testing.T) {
		src := solid(1234, 567, red)
		out := p.ResizeSmart(src, 1024, 768, true)

		top := 0
		for y := 0; y < out.Bounds().Dy(); y++ {
			if isRedish(out.At(512, y)) {
				top = y
				break
			}
		}
		bodyHeight := out.Bounds().Dy() - 2*top
		expected := 1024.0 * 567.0 / 1234.0
		assert.InDelta(t, expected, float64(bodyHeight), 1.5)
	})
}

func TestImageProcessor_Decode(t *testing.T) {
	p := storage.NewImageProcessor()

	t.Run("decodes png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, solid(30, 20, red)))

		img, err := p.Decode(&buf)

		require.NoError(t, err)
		assert.Equal(t, 30, img.Bounds().Dx())
		assert.Equal(t, 20, img.Bounds().Dy())
	})

	t.Run("drops alpha without blending", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 200, B: 30, A: 128})
		src.SetNRGBA(1, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, src))

		img, err := p.Decode(&buf)
		require.NoError(t, err)

		nrgba, ok := img.(*image.NRGBA)
		require.True(t, ok)
		assert.Equal(t, uint8(255), nrgba.NRGBAAt(0, 0).A)
		assert.Equal(t, uint8(200), nrgba.NRGBAAt(0, 0).G)
		assert.Equal(t, color.NRGBA{R: 50, G: 60, B: 70, A: 255}, nrgba.NRGBAAt(1, 0))
	})

	t.Run("rejects corrupt bytes", func(t *testing.T) {
		img, err := p.Decode(bytes.NewReader([]byte("definitely not an image")))

		assert.Nil(t, img)
		assert.ErrorIs(t, err, domain.ErrDecode)
	})
}

func TestImageProcessor_Thumbnail(t *testing.T) {
	p := storage.NewImageProcessor()

	out := p.Thumbnail(solid(800, 400, red), 200)
	assert.Equal(t, image.Rect(0, 0, 200, 100), out.Bounds())

	small := p.Thumbnail(solid(50, 40, red), 200)
	assert.Equal(t, image.Rect(0, 0, 50, 40), small.Bounds())
}

func TestImageProcessor_EncodeJPEG(t *testing.T) {
	p := storage.NewImageProcessor()

	var buf bytes.Buffer
	require.NoError(t, p.EncodeJPEG(&buf, solid(64, 48, red), 85))

	cfg, format, err := image.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}
