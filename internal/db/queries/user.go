package queries

import (
	"context"
	"time"
)

const userColumns = `id, username, email, image_file, password_hash, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.ImageFile, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const createUser = `INSERT INTO "user" (username, email, image_file, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

type CreateUserParams struct {
	Username     string
	Email        string
	ImageFile    string
	PasswordHash string
	CreatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.Username, arg.Email, arg.ImageFile, arg.PasswordHash, arg.CreatedAt)
	return scanUser(row)
}

const getUserByID = `SELECT ` + userColumns + ` FROM "user" WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM "user" WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM "user" WHERE username = $1`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByUsername, username))
}

const updateUser = `UPDATE "user" SET
    username = CASE WHEN $2::bool THEN $3 ELSE username END,
    email = CASE WHEN $4::bool THEN $5 ELSE email END,
    image_file = CASE WHEN $6::bool THEN $7 ELSE image_file END
WHERE id = $1
RETURNING ` + userColumns

type UpdateUserParams struct {
	ID                int64
	DoUsernameUpdate  bool
	Username          string
	DoEmailUpdate     bool
	Email             string
	DoImageFileUpdate bool
	ImageFile         string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(
		ctx,
		updateUser,
		arg.ID,
		arg.DoUsernameUpdate,
		arg.Username,
		arg.DoEmailUpdate,
		arg.Email,
		arg.DoImageFileUpdate,
		arg.ImageFile,
	)
	return scanUser(row)
}

const setUserPassword = `UPDATE "user" SET password_hash = $2 WHERE id = $1 RETURNING id`

func (q *Queries) SetUserPassword(ctx context.Context, id int64, passwordHash string) error {
	var updatedID int64
	return q.db.QueryRow(ctx, setUserPassword, id, passwordHash).Scan(&updatedID)
}
