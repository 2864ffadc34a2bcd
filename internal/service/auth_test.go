package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
	"marketplace-api/internal/store"

	"github.com/stretchr/testify/require"
)

// memUsers 以 map 模擬 users 表
type memUsers struct {
	byEmail map[string]*model.User
	nextID  int
}

func installMemUsers() *memUsers {
	m := &memUsers{byEmail: map[string]*model.User{}, nextID: 1}
	findUserByEmailOrUsername = func(_ context.Context, _ database.DB, email, username string) (*model.User, error) {
		for _, u := range m.byEmail {
			if u.Email == email || u.Username == username {
				return u, nil
			}
		}
		return nil, fmt.Errorf("FindUserByEmailOrUsername: %w", store.ErrNotFound)
	}
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		if u, ok := m.byEmail[email]; ok {
			return u, nil
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", store.ErrNotFound)
	}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		u.ID = m.nextID
		m.nextID++
		m.byEmail[u.Email] = u
		return u, nil
	}
	return m
}

func TestPasswordHash(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)
	require.NoError(t, ComparePassword(hash, "secret"))
	require.Error(t, ComparePassword(hash, "nope"))

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
	_, err = HashPassword("secret")
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	setup(t)
	users := installMemUsers()
	svc := NewAuthService(&database.FakeDB{}, NewTokenIssuer("s", time.Hour))
	ctx := context.Background()

	u, err := svc.Register(ctx, "e1@x.io", "u1", "p1")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.NotEqual(t, "p1", users.byEmail["e1@x.io"].PasswordHash)

	_, err = svc.Register(ctx, "e1@x.io", "u2", "p1")
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, "Email or username already exists", Message(err))

	_, err = svc.Register(ctx, "e2@x.io", "u1", "p1")
	require.ErrorIs(t, err, ErrConflict)

	for _, in := range [][3]string{{"", "u", "p"}, {"e", "", "p"}, {"e", "u", ""}} {
		_, err = svc.Register(ctx, in[0], in[1], in[2])
		require.ErrorIs(t, err, ErrValidation)
		require.Equal(t, "All fields are required", Message(err))
	}
}

func TestRegisterStoreErrors(t *testing.T) {
	setup(t)
	installMemUsers()
	svc := NewAuthService(&database.FakeDB{}, NewTokenIssuer("s", time.Hour))
	ctx := context.Background()

	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, fmt.Errorf("CreateUser: %w", store.ErrDuplicate)
	}
	_, err := svc.Register(ctx, "e@x.io", "u", "p")
	require.ErrorIs(t, err, ErrConflict)

	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = svc.Register(ctx, "e@x.io", "u", "p")
	require.Error(t, err)
	require.Empty(t, Message(err))

	findUserByEmailOrUsername = func(context.Context, database.DB, string, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = svc.Register(ctx, "e@x.io", "u", "p")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrConflict))

	installMemUsers()
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
	_, err = svc.Register(ctx, "e@x.io", "u", "p")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	setup(t)
	installMemUsers()
	issuer := NewTokenIssuer("s", time.Hour)
	svc := NewAuthService(&database.FakeDB{}, issuer)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "e1@x.io", "u1", "p1")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "  e1@x.io ", "p1")
	require.NoError(t, err)
	require.Equal(t, "1h", res.ExpiresIn)
	require.Equal(t, registered.ID, res.User.ID)

	claims, err := issuer.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.ID)
	require.Equal(t, "e1@x.io", claims.Email)
	require.Equal(t, "u1", claims.Username)

	_, wrongPw := svc.Login(ctx, "e1@x.io", "nope")
	_, noUser := svc.Login(ctx, "ghost@x.io", "p1")
	require.ErrorIs(t, wrongPw, ErrUnauthorized)
	require.ErrorIs(t, noUser, ErrUnauthorized)
	require.Equal(t, Message(wrongPw), Message(noUser))
	require.Equal(t, "Invalid email or password.", Message(noUser))
}

func TestLoginValidation(t *testing.T) {
	setup(t)
	svc := NewAuthService(&database.FakeDB{}, NewTokenIssuer("s", time.Hour))
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "Missing required field(s): email, password", Message(err))

	_, err = svc.Login(ctx, "a@b.co", "")
	require.Equal(t, "Missing required field(s): password", Message(err))

	_, err = svc.Login(ctx, "", "p")
	require.Equal(t, "Missing required field(s): email", Message(err))

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = svc.Login(ctx, "a@b.co", "p")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthorized))
}

func TestRegisterPasswordByteLimit(t *testing.T) {
	setup(t)
	users := installMemUsers()
	svc := NewAuthService(&database.FakeDB{}, NewTokenIssuer("s", time.Hour))
	ctx := context.Background()

	// 72 個字元但 216 bytes，超過 bcrypt 上限
	_, err := svc.Register(ctx, "wide@x.io", "wide", strings.Repeat("密", 72))
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "Password must be at most 72 bytes.", Message(err))
	require.Empty(t, users.byEmail)

	_, err = svc.Register(ctx, "ascii@x.io", "ascii", strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
}
