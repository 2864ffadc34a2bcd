package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
	"marketplace-api/internal/store"
)

var (
	findUserByEmailOrUsername = store.FindUserByEmailOrUsername
	getUserByEmail            = store.GetUserByEmail
	createUser                = store.CreateUser
)

const invalidCredentials = "Invalid email or password."

// AuthService handles signup and login against the users table.
type AuthService struct {
	db     database.DB
	tokens *TokenIssuer
}

func NewAuthService(db database.DB, tokens *TokenIssuer) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// LoginResult is what a successful login hands back to the handler.
type LoginResult struct {
	User      *model.User
	Token     string
	ExpiresIn string
}

// Register 建立新使用者；email 或 username 任一重複即回傳 ErrConflict
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	if email == "" || username == "" || password == "" {
		return nil, NewError(ErrValidation, "All fields are required")
	}
	if len(password) > MaxPasswordBytes {
		return nil, NewError(ErrValidation, "Password must be at most 72 bytes.")
	}

	_, err := findUserByEmailOrUsername(ctx, s.db, email, username)
	switch {
	case err == nil:
		return nil, NewError(ErrConflict, "Email or username already exists")
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := createUser(ctx, s.db, &model.User{Email: email, Username: username, PasswordHash: hash})
	if errors.Is(err, store.ErrDuplicate) {
		// 兩個請求同時通過存在檢查時由 unique index 擋下
		return nil, NewError(ErrConflict, "Email or username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, NewError(ErrValidation, "Missing required field(s): "+strings.Join(missing, ", "))
	}

	u, err := getUserByEmail(ctx, s.db, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, NewError(ErrUnauthorized, invalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, NewError(ErrUnauthorized, invalidCredentials)
	}

	token, expiresIn, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: token, ExpiresIn: expiresIn}, nil
}
