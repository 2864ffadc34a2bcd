package store

import (
	"context"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
)

const userColumns = `id, email, username, password, created_at`

func scanUser(row interface{ Scan(...any) error }, u *model.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, translate("GetUserByEmail", err)
	}
	return u, nil
}

// FindUserByEmailOrUsername 一次查詢同時檢查 email 與 username 是否已被使用
func FindUserByEmailOrUsername(ctx context.Context, db database.DB, email, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR username = $2 LIMIT 1`,
		email,
		username,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, translate("FindUserByEmailOrUsername", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, username, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.Username,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, translate("CreateUser", err)
	}
	return u, nil
}
