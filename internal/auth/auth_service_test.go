package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	autherrors "payrollpro/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
	countAllFn   func(ctx context.Context) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error { return f.createFn(ctx, user) }
func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) CountAll(ctx context.Context) (int64, error) { return f.countAllFn(ctx) }

func newStoredUser(t *testing.T, email, password, role string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	now := time.Now().UTC()
	return &User{
		ID:               uuid.New(),
		Email:            email,
		Password:         string(hashed),
		Role:             role,
		IsActive:         true,
		EmailConfirmedAt: &now,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	stored := newStoredUser(t, "jane@acme.test", "secret123", RoleEmployee)

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			if email != stored.Email {
				return nil, errors.New("record not found")
			}
			return stored, nil
		},
	}
	svc := NewService(repo, nil)

	access, refresh, resp, err := svc.Login(context.Background(), "jane@acme.test", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, stored.ID.String(), resp.ID)
	assert.Equal(t, RoleEmployee, resp.Role)

	_, _, _, err = svc.Login(context.Background(), "jane@acme.test", "wrong-pass")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody@acme.test", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_AdminLogin_RejectsEmployee(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	stored := newStoredUser(t, "jane@acme.test", "secret123", RoleEmployee)

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return stored, nil },
	}
	svc := NewService(repo, nil)

	_, _, _, err := svc.AdminLogin(context.Background(), "jane@acme.test", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrAdminOnly)
}

func TestService_AdminLogin_AllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	stored := newStoredUser(t, "boss@acme.test", "secret123", RoleAdmin)

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return stored, nil },
	}
	svc := NewService(repo, nil)

	_, _, resp, err := svc.AdminLogin(context.Background(), "boss@acme.test", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)
}

func TestService_Register(t *testing.T) {
	var created *User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error { created = user; return nil },
	}
	svc := NewService(repo, nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@acme.test",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, RoleEmployee, created.Role)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	assert.NotNil(t, resp.ConfirmedAt)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`)
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dup@acme.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
}

func TestService_RefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	stored := newStoredUser(t, "jane@acme.test", "secret123", RoleEmployee)

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return stored, nil },
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			if id != stored.ID {
				return nil, errors.New("record not found")
			}
			return stored, nil
		},
	}
	svc := NewService(repo, nil)

	_, refresh, _, err := svc.Login(context.Background(), "jane@acme.test", "secret123")
	assert.NoError(t, err)

	access2, refresh2, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEmpty(t, refresh2)
	assert.Equal(t, stored.ID.String(), resp.ID)

	_, _, _, err = svc.RefreshToken(context.Background(), "garbage.token.value")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
