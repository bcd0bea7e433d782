package post

import (
	"blog/internal/core/domain/user"
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Posts          []Post
	Locked         []ID
	UserRepository user.UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeRepository(userRepository user.UserRepository) *FakeRepository {
	return &FakeRepository{UserRepository: userRepository}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Post, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create post")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Posts {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p = Post{
		ID:         maxID + 1,
		Title:      input.Title,
		Content:    input.Content,
		DatePosted: input.DatePosted,
		AuthorID:   input.AuthorID,
	}
	r.Posts = append(r.Posts, p)
	return p, nil
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Posts {
		if p.ID == id {
			r.Locked = append(r.Locked, id)
			return nil
		}
	}
	return ErrPostDoesNotExist
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p PostWithAuthor, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not get post %d", id)
	}
	r.lock.Lock()
	var found *Post
	for ix := range r.Posts {
		if r.Posts[ix].ID == id {
			post := r.Posts[ix]
			found = &post
			break
		}
	}
	r.lock.Unlock()
	if found == nil {
		return p, ErrPostDoesNotExist
	}
	return r.withAuthor(ctx, *found)
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]PostWithAuthor, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read posts")
	}
	selected := r.selectPosts(options)
	if options.Offset >= uint(len(selected)) {
		return []PostWithAuthor{}, nil
	}
	selected = selected[options.Offset:]
	if options.Limit.IsPresent && options.Limit.Value < uint(len(selected)) {
		selected = selected[:options.Limit.Value]
	}
	result := make([]PostWithAuthor, 0, len(selected))
	for _, p := range selected {
		withAuthor, err := r.withAuthor(ctx, p)
		if err != nil {
			return nil, err
		}
		result = append(result, withAuthor)
	}
	return result, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not count posts")
	}
	return uint(len(r.selectPosts(options))), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (p Post, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not update post %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Posts {
		if r.Posts[ix].ID != input.ID {
			continue
		}
		if input.DoTitleUpdate {
			r.Posts[ix].Title = input.Title
		}
		if input.DoContentUpdate {
			r.Posts[ix].Content = input.Content
		}
		return r.Posts[ix], nil
	}
	return p, ErrPostDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete post %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Posts {
		if r.Posts[ix].ID == id {
			r.Posts = append(r.Posts[:ix], r.Posts[ix+1:]...)
			return nil
		}
	}
	return ErrPostDoesNotExist
}

func (r *FakeRepository) selectPosts(options ReadOptions) []Post {
	r.lock.Lock()
	defer r.lock.Unlock()
	selected := make([]Post, 0, len(r.Posts))
	for _, p := range r.Posts {
		if options.AuthorIDEquals.IsPresent && p.AuthorID != options.AuthorIDEquals.Value {
			continue
		}
		selected = append(selected, p)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].DatePosted.Equal(selected[j].DatePosted) {
			return selected[i].ID > selected[j].ID
		}
		return selected[i].DatePosted.After(selected[j].DatePosted)
	})
	return selected
}

func (r *FakeRepository) withAuthor(ctx context.Context, p Post) (PostWithAuthor, error) {
	author, err := r.UserRepository.GetByID(ctx, p.AuthorID)
	if err != nil {
		return PostWithAuthor{}, err
	}
	return PostWithAuthor{Post: p, Author: NewAuthor(author)}, nil
}

type FakeFeed struct {
	Events      []Event
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeFeed() *FakeFeed {
	return &FakeFeed{}
}

func (f *FakeFeed) Publish(ctx context.Context, event Event) error {
	if f.ReturnError {
		return fmt.Errorf("could not publish %s", event.Type)
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Events = append(f.Events, event)
	return nil
}
