package picture

import (
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/user"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Filesystem struct {
	dir string
}

func NewFilesystem(dir string) (*Filesystem, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Filesystem{dir: dir}, nil
}

func (s *Filesystem) Dir() string {
	return s.dir
}

func (s *Filesystem) Save(ctx context.Context, p picture.Picture) (user.ImageFile, error) {
	name := newName(p.Format)
	if err := os.WriteFile(filepath.Join(s.dir, string(name)), p.Data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Filesystem) Delete(ctx context.Context, name user.ImageFile) error {
	if !isManaged(name) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, string(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
