package queries

import (
	"context"
	"time"
)

const createSession = `INSERT INTO session (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`

type CreateSessionParams struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) error {
	_, err := q.db.Exec(ctx, createSession, arg.Token, arg.UserID, arg.CreatedAt, arg.ExpiresAt)
	return err
}

const getUserBySessionToken = `SELECT u.id, u.username, u.email, u.image_file, u.password_hash, u.created_at
FROM session s
JOIN "user" u ON u.id = s.user_id
WHERE s.token = $1 AND s.expires_at > $2`

func (q *Queries) GetUserBySessionToken(ctx context.Context, token string, now time.Time) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserBySessionToken, token, now))
}

const deleteSessionByToken = `DELETE FROM session WHERE token = $1 RETURNING user_id`

func (q *Queries) DeleteSessionByToken(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := q.db.QueryRow(ctx, deleteSessionByToken, token).Scan(&userID)
	return userID, err
}
