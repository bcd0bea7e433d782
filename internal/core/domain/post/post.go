package post

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"fmt"
	"strings"
	"time"
)

type ID int64

const MaxTitleLength = 100

type Title string

func NewTitle(raw string) (Title, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return Title(""), ErrEmptyTitle
	}
	if len([]rune(title)) > MaxTitleLength {
		return Title(""), ErrTitleTooLong
	}
	return Title(title), nil
}

type Content string

func NewContent(raw string) (Content, error) {
	if strings.TrimSpace(raw) == "" {
		return Content(""), ErrEmptyContent
	}
	return Content(raw), nil
}

type Post struct {
	ID         ID
	Title      Title
	Content    Content
	DatePosted time.Time
	AuthorID   user.ID
}

func (p *Post) Validate() error {
	if p.Title == "" {
		return e.NewInvalidStateError(fmt.Sprintf("title is not set for post %d", p.ID))
	}
	if p.Content == "" {
		return e.NewInvalidStateError(fmt.Sprintf("content is not set for post %d", p.ID))
	}
	if p.AuthorID == 0 {
		return e.NewInvalidStateError(fmt.Sprintf("author is not set for post %d", p.ID))
	}
	return nil
}

func (p *Post) IsWrittenBy(userID user.ID) bool {
	return p.AuthorID == userID
}

type Author struct {
	ID        user.ID
	Username  user.Username
	ImageFile user.ImageFile
}

func NewAuthor(u user.User) Author {
	return Author{ID: u.ID, Username: u.Username, ImageFile: u.ImageFile}
}

type PostWithAuthor struct {
	Post
	Author Author
}
