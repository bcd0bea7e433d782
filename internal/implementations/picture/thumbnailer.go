package picture

import (
	"blog/internal/core/domain/picture"
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxSide   = 125
	DefaultMaxBytes  = 5 << 20
	DefaultMaxPixels = 4096 * 4096
)

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
)

// Thumbnailer shrinks uploaded JPEG and PNG pictures to fit a square box,
// keeping the aspect ratio and the original format. Pictures are never upscaled.
// Pictures declaring more than maxPixels pixels are rejected before decoding.
type Thumbnailer struct {
	maxSide   int
	maxBytes  int64
	maxPixels int64
}

func NewThumbnailer(maxSide int, maxBytes int64) *Thumbnailer {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Thumbnailer{maxSide: maxSide, maxBytes: maxBytes, maxPixels: DefaultMaxPixels}
}

func (t *Thumbnailer) Thumbnail(r io.Reader) (p picture.Picture, err error) {
	data, err := io.ReadAll(io.LimitReader(r, t.maxBytes+1))
	if err != nil {
		return p, err
	}
	if int64(len(data)) > t.maxBytes {
		return p, picture.ErrInvalidPicture
	}
	format, err := detectFormat(data)
	if err != nil {
		return p, err
	}

	config, err := decodeConfig(data, format)
	if err != nil {
		return p, picture.ErrInvalidPicture
	}
	if config.Width <= 0 || config.Height <= 0 || int64(config.Width)*int64(config.Height) > t.maxPixels {
		return p, picture.ErrInvalidPicture
	}

	img, err := decode(data, format)
	if err != nil {
		return p, picture.ErrInvalidPicture
	}

	thumbnail := t.resize(img)
	buf := bytes.Buffer{}
	if format == picture.PNG {
		err = png.Encode(&buf, thumbnail)
	} else {
		err = jpeg.Encode(&buf, thumbnail, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return p, err
	}
	return picture.Picture{Format: format, Data: buf.Bytes()}, nil
}

func (t *Thumbnailer) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	dstW, dstH := fit(srcW, srcH, t.maxSide)
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func fit(width int, height int, maxSide int) (int, int) {
	if width <= maxSide && height <= maxSide {
		return width, height
	}
	if width >= height {
		h := height * maxSide / width
		if h < 1 {
			h = 1
		}
		return maxSide, h
	}
	w := width * maxSide / height
	if w < 1 {
		w = 1
	}
	return w, maxSide
}

func detectFormat(data []byte) (picture.Format, error) {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return picture.JPEG, nil
	case bytes.HasPrefix(data, pngMagic):
		return picture.PNG, nil
	default:
		return picture.Format(""), picture.ErrUnsupportedFormat
	}
}

func decode(data []byte, format picture.Format) (image.Image, error) {
	if format == picture.PNG {
		return png.Decode(bytes.NewReader(data))
	}
	return jpeg.Decode(bytes.NewReader(data))
}

func decodeConfig(data []byte, format picture.Format) (image.Config, error) {
	if format == picture.PNG {
		return png.DecodeConfig(bytes.NewReader(data))
	}
	return jpeg.DecodeConfig(bytes.NewReader(data))
}
