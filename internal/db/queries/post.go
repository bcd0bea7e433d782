package queries

import (
	"context"
	"time"
)

const postColumns = `p.id, p.title, p.content, p.date_posted, p.author_id`

const createPost = `INSERT INTO post AS p (title, content, date_posted, author_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + postColumns

type CreatePostParams struct {
	Title      string
	Content    string
	DatePosted time.Time
	AuthorID   int64
}

func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	var p Post
	err := q.db.QueryRow(ctx, createPost, arg.Title, arg.Content, arg.DatePosted, arg.AuthorID).
		Scan(&p.ID, &p.Title, &p.Content, &p.DatePosted, &p.AuthorID)
	return p, err
}

const lockPost = `SELECT id FROM post WHERE id = $1 FOR UPDATE`

func (q *Queries) LockPost(ctx context.Context, id int64) error {
	var lockedID int64
	return q.db.QueryRow(ctx, lockPost, id).Scan(&lockedID)
}

const postWithAuthorSelect = `SELECT ` + postColumns + `, u.username, u.image_file
FROM post p
JOIN "user" u ON u.id = p.author_id`

func scanPostWithAuthor(row interface{ Scan(...interface{}) error }) (PostWithAuthor, error) {
	var p PostWithAuthor
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.DatePosted,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.AuthorImageFile,
	)
	return p, err
}

const getPostByID = postWithAuthorSelect + ` WHERE p.id = $1`

func (q *Queries) GetPostByID(ctx context.Context, id int64) (PostWithAuthor, error) {
	return scanPostWithAuthor(q.db.QueryRow(ctx, getPostByID, id))
}

const readPosts = postWithAuthorSelect + `
WHERE ($1::bool OR p.author_id = $2)
ORDER BY p.date_posted DESC, p.id DESC
LIMIT CASE WHEN $3::bool THEN NULL ELSE $4::bigint END
OFFSET $5`

type ReadPostsParams struct {
	AnyAuthorID    bool
	AuthorIDEquals int64
	AllRows        bool
	Limit          int64
	Offset         int64
}

func (q *Queries) ReadPosts(ctx context.Context, arg ReadPostsParams) ([]PostWithAuthor, error) {
	rows, err := q.db.Query(ctx, readPosts, arg.AnyAuthorID, arg.AuthorIDEquals, arg.AllRows, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PostWithAuthor
	for rows.Next() {
		p, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPosts = `SELECT count(*) FROM post p WHERE ($1::bool OR p.author_id = $2)`

type CountPostsParams struct {
	AnyAuthorID    bool
	AuthorIDEquals int64
}

func (q *Queries) CountPosts(ctx context.Context, arg CountPostsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countPosts, arg.AnyAuthorID, arg.AuthorIDEquals).Scan(&count)
	return count, err
}

const updatePost = `UPDATE post AS p SET
    title = CASE WHEN $2::bool THEN $3 ELSE p.title END,
    content = CASE WHEN $4::bool THEN $5 ELSE p.content END
WHERE p.id = $1
RETURNING ` + postColumns

type UpdatePostParams struct {
	ID              int64
	DoTitleUpdate   bool
	Title           string
	DoContentUpdate bool
	Content         string
}

func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (Post, error) {
	var p Post
	err := q.db.QueryRow(
		ctx,
		updatePost,
		arg.ID,
		arg.DoTitleUpdate,
		arg.Title,
		arg.DoContentUpdate,
		arg.Content,
	).Scan(&p.ID, &p.Title, &p.Content, &p.DatePosted, &p.AuthorID)
	return p, err
}

const deletePost = `DELETE FROM post WHERE id = $1 RETURNING id`

func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	var deletedID int64
	return q.db.QueryRow(ctx, deletePost, id).Scan(&deletedID)
}
