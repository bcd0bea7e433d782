package picture

import (
	"blog/internal/core/domain/user"
	"context"
	"errors"
	"io"
)

var (
	ErrUnsupportedFormat = errors.New("picture format is not supported")
	ErrInvalidPicture    = errors.New("picture could not be decoded")
)

type Format string

const (
	JPEG = Format("jpg")
	PNG  = Format("png")
)

func (f Format) Extension() string {
	return string(f)
}

func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/jpeg"
}

type Picture struct {
	Format Format
	Data   []byte
}

// Processor turns an uploaded picture into a profile thumbnail.
type Processor interface {
	Thumbnail(r io.Reader) (Picture, error)
}

// Storage keeps profile pictures under generated unique names.
type Storage interface {
	Save(ctx context.Context, p Picture) (user.ImageFile, error)
	Delete(ctx context.Context, name user.ImageFile) error
}
