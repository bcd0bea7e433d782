package picture

import (
	"blog/internal/core/domain/user"
	"context"
	"fmt"
	"io"
	"sync"
)

type FakeProcessor struct {
	Err error
}

func NewFakeProcessor() *FakeProcessor {
	return &FakeProcessor{}
}

func (p *FakeProcessor) Thumbnail(r io.Reader) (pic Picture, err error) {
	if p.Err != nil {
		return pic, p.Err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return pic, err
	}
	return Picture{Format: JPEG, Data: data}, nil
}

type FakeStorage struct {
	Saved       map[user.ImageFile]Picture
	Deleted     []user.ImageFile
	ReturnError bool
	counter     int
	lock        sync.Mutex
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Saved: make(map[user.ImageFile]Picture)}
}

func (s *FakeStorage) Save(ctx context.Context, p Picture) (user.ImageFile, error) {
	if s.ReturnError {
		return "", fmt.Errorf("could not save picture")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.counter++
	name := user.ImageFile(fmt.Sprintf("picture-%d.%s", s.counter, p.Format.Extension()))
	s.Saved[name] = p
	return name, nil
}

func (s *FakeStorage) Delete(ctx context.Context, name user.ImageFile) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.Saved, name)
	s.Deleted = append(s.Deleted, name)
	return nil
}
