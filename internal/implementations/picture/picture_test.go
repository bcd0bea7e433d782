package picture

import (
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/user"
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func newImage(width int, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	buf := bytes.Buffer{}
	require.Nil(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	buf := bytes.Buffer{}
	require.Nil(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestThumbnailFitsBox(t *testing.T) {
	cases := []struct {
		name   string
		data   func(t *testing.T) []byte
		format picture.Format
		width  int
		height int
	}{
		{
			name:   "wide png",
			data:   func(t *testing.T) []byte { return encodePNG(t, newImage(500, 250)) },
			format: picture.PNG,
			width:  125,
			height: 62,
		},
		{
			name:   "tall jpeg",
			data:   func(t *testing.T) []byte { return encodeJPEG(t, newImage(200, 400)) },
			format: picture.JPEG,
			width:  62,
			height: 125,
		},
		{
			name:   "small png is not upscaled",
			data:   func(t *testing.T) []byte { return encodePNG(t, newImage(40, 30)) },
			format: picture.PNG,
			width:  40,
			height: 30,
		},
	}
	thumbnailer := NewThumbnailer(125, 0)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)
			p, err := thumbnailer.Thumbnail(bytes.NewReader(tc.data(t)))
			assert.Nil(err)
			assert.Equal(tc.format, p.Format)

			config, _, err := image.DecodeConfig(bytes.NewReader(p.Data))
			assert.Nil(err)
			assert.Equal(tc.width, config.Width)
			assert.Equal(tc.height, config.Height)
		})
	}
}

func TestThumbnailRejectsUnsupportedData(t *testing.T) {
	thumbnailer := NewThumbnailer(125, 0)

	_, err := thumbnailer.Thumbnail(strings.NewReader("GIF89a not supported"))
	require.ErrorIs(t, err, picture.ErrUnsupportedFormat)

	_, err = thumbnailer.Thumbnail(bytes.NewReader(append([]byte{}, pngMagic...)))
	require.ErrorIs(t, err, picture.ErrInvalidPicture)

	_, err = thumbnailer.Thumbnail(bytes.NewReader(nil))
	require.ErrorIs(t, err, picture.ErrUnsupportedFormat)
}

func TestThumbnailRejectsOversizedUpload(t *testing.T) {
	thumbnailer := NewThumbnailer(125, 10)
	_, err := thumbnailer.Thumbnail(bytes.NewReader(encodePNG(t, newImage(20, 20))))
	require.ErrorIs(t, err, picture.ErrInvalidPicture)
}

// withPNGDimensions rewrites the IHDR chunk so the header declares the given
// size while the pixel data stays tiny.
func withPNGDimensions(data []byte, width uint32, height uint32) []byte {
	patched := append([]byte{}, data...)
	binary.BigEndian.PutUint32(patched[16:20], width)
	binary.BigEndian.PutUint32(patched[20:24], height)
	binary.BigEndian.PutUint32(patched[29:33], crc32.ChecksumIEEE(patched[12:29]))
	return patched
}

func TestThumbnailRejectsHugeDimensions(t *testing.T) {
	assert := require.New(t)
	thumbnailer := NewThumbnailer(125, 0)
	upload := withPNGDimensions(encodePNG(t, image.NewGray(image.Rect(0, 0, 1, 1))), 20000, 20000)

	config, err := png.DecodeConfig(bytes.NewReader(upload))
	assert.Nil(err)
	assert.Equal(20000, config.Width)

	_, err = thumbnailer.Thumbnail(bytes.NewReader(upload))
	assert.ErrorIs(err, picture.ErrInvalidPicture)
}

func TestThumbnailPixelLimit(t *testing.T) {
	thumbnailer := NewThumbnailer(125, 0)
	thumbnailer.maxPixels = 40 * 30

	_, err := thumbnailer.Thumbnail(bytes.NewReader(encodePNG(t, newImage(40, 30))))
	require.Nil(t, err)

	_, err = thumbnailer.Thumbnail(bytes.NewReader(encodeJPEG(t, newImage(41, 30))))
	require.ErrorIs(t, err, picture.ErrInvalidPicture)
}

func TestFit(t *testing.T) {
	cases := []struct{ w, h, ew, eh int }{
		{125, 125, 125, 125},
		{250, 250, 125, 125},
		{1000, 1, 125, 1},
		{1, 1000, 1, 125},
		{10, 20, 10, 20},
	}
	for _, tc := range cases {
		w, h := fit(tc.w, tc.h, 125)
		require.Equal(t, tc.ew, w, "%dx%d", tc.w, tc.h)
		require.Equal(t, tc.eh, h, "%dx%d", tc.w, tc.h)
	}
}

func TestFilesystemStorage(t *testing.T) {
	assert := require.New(t)
	dir := filepath.Join(t.TempDir(), "profile_pics")
	storage, err := NewFilesystem(dir)
	assert.Nil(err)

	name, err := storage.Save(context.Background(), picture.Picture{Format: picture.PNG, Data: []byte("data")})
	assert.Nil(err)
	assert.True(strings.HasSuffix(string(name), ".png"))

	data, err := os.ReadFile(filepath.Join(dir, string(name)))
	assert.Nil(err)
	assert.Equal([]byte("data"), data)

	other, err := storage.Save(context.Background(), picture.Picture{Format: picture.PNG, Data: []byte("data")})
	assert.Nil(err)
	assert.NotEqual(name, other)

	assert.Nil(storage.Delete(context.Background(), name))
	_, err = os.Stat(filepath.Join(dir, string(name)))
	assert.True(os.IsNotExist(err))

	assert.Nil(storage.Delete(context.Background(), name))
}

func TestFilesystemKeepsDefaultPicture(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()
	storage, err := NewFilesystem(dir)
	assert.Nil(err)
	path := filepath.Join(dir, string(user.DefaultImageFile))
	assert.Nil(os.WriteFile(path, []byte("default"), 0o644))

	assert.Nil(storage.Delete(context.Background(), user.DefaultImageFile))
	assert.Nil(storage.Delete(context.Background(), user.ImageFile("../escape.png")))
	_, err = os.Stat(path)
	assert.Nil(err)
}

type fakeS3API struct {
	put     []*s3.PutObjectInput
	deleted []*s3.DeleteObjectInput
	body    []byte
}

func (f *fakeS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = append(f.put, params)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, params)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage(t *testing.T) {
	assert := require.New(t)
	api := &fakeS3API{}
	storage := &S3{client: api, bucket: "blog", prefix: "profile_pics/"}

	name, err := storage.Save(context.Background(), picture.Picture{Format: picture.JPEG, Data: []byte("jpeg")})
	assert.Nil(err)
	assert.Len(api.put, 1)
	assert.Equal("blog", *api.put[0].Bucket)
	assert.Equal("profile_pics/"+string(name), *api.put[0].Key)
	assert.Equal("image/jpeg", *api.put[0].ContentType)
	assert.Equal([]byte("jpeg"), api.body)

	assert.Nil(storage.Delete(context.Background(), name))
	assert.Nil(storage.Delete(context.Background(), user.DefaultImageFile))
	assert.Len(api.deleted, 1)
	assert.Equal("profile_pics/"+string(name), *api.deleted[0].Key)
}
