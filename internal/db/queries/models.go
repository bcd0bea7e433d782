package queries

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	ImageFile    string
	PasswordHash string
	CreatedAt    time.Time
}

type Post struct {
	ID         int64
	Title      string
	Content    string
	DatePosted time.Time
	AuthorID   int64
}

type PostWithAuthor struct {
	Post
	AuthorUsername  string
	AuthorImageFile string
}
