package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/shared/apperr"
)

type mockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *entity.User) error
	SaveFunc                 func(ctx context.Context, user *entity.User) error
	FindByEmailFunc          func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*entity.User, error)
	FindByResetTokenHashFunc func(ctx context.Context, hash string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Save(ctx context.Context, user *entity.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByResetTokenHash(ctx context.Context, hash string) (*entity.User, error) {
	if m.FindByResetTokenHashFunc != nil {
		return m.FindByResetTokenHashFunc(ctx, hash)
	}
	return nil, ErrUserNotFound
}

type mockTokenGenerator struct {
	GenerateTokenFunc func(userID uint, role entity.Role) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID uint, role entity.Role) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, role)
	}
	return "mock-jwt-token", nil
}

type revokeCall struct {
	jti       string
	userID    uint
	expiresAt time.Time
}

type mockRevoker struct {
	calls []revokeCall
	err   error
}

func (m *mockRevoker) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	m.calls = append(m.calls, revokeCall{jti, userID, expiresAt})
	return m.err
}

type mockMailer struct {
	to, link string
}

func (m *mockMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	m.to, m.link = to, link
	return nil
}

func newTestUsecase(users UserRepository, tokens TokenGenerator) (*authUsecase, *mockRevoker, *mockMailer) {
	rev := &mockRevoker{}
	mailer := &mockMailer{}
	if tokens == nil {
		tokens = &mockTokenGenerator{}
	}
	uc := NewAuthUsecase(users, tokens, rev, mailer, Options{
		ResetTokenTTL: 30 * time.Minute,
		ResetURLBase:  "http://localhost:5173/reset-password/",
	})
	return uc, rev, mailer
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Parallel()

	t.Run("hashes password and normalizes email", func(t *testing.T) {
		t.Parallel()

		var created *entity.User
		repo := &mockUserRepository{CreateFunc: func(ctx context.Context, u *entity.User) error {
			u.ID = 11
			created = u
			return nil
		}}
		uc, _, _ := newTestUsecase(repo, nil)

		user, err := uc.Signup(context.Background(), SignupInput{
			Name: " Asha ", Email: " Asha@Campus.EDU ", Password: "password123", Role: entity.RoleStudent,
		})
		require.NoError(t, err)

		assert.Equal(t, uint(11), user.ID)
		assert.Equal(t, "asha@campus.edu", created.Email)
		assert.Equal(t, "Asha", created.Name)
		assert.NotEqual(t, "password123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	})

	tests := []struct {
		name    string
		in      SignupInput
		repoErr error
		wantErr error
	}{
		{"admin cannot self-register", SignupInput{Email: "a@b.c", Password: "password123", Role: entity.RoleAdmin}, nil, ErrRoleNotAllowed},
		{"unknown role", SignupInput{Email: "a@b.c", Password: "password123", Role: "dean"}, nil, ErrRoleNotAllowed},
		{"short password", SignupInput{Email: "a@b.c", Password: "short", Role: entity.RoleStudent}, nil, ErrWeakPassword},
		{"password over bcrypt limit", SignupInput{Email: "a@b.c", Password: strings.Repeat("p", 80), Role: entity.RoleStudent}, nil, ErrPasswordTooLong},
		{"duplicate email", SignupInput{Email: "a@b.c", Password: "password123", Role: entity.RoleAlumni}, ErrEmailAlreadyExists, ErrEmailAlreadyExists},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &mockUserRepository{CreateFunc: func(ctx context.Context, u *entity.User) error {
				called = true
				return tt.repoErr
			}}
			uc, _, _ := newTestUsecase(repo, nil)

			_, err := uc.Signup(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.repoErr != nil, called, "store is only reached by valid input")
		})
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	testUser := &entity.User{ID: 1, Email: "test@example.com", Password: mustHash(t, "password123"), Role: entity.RoleAlumni}
	findUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		gen := &mockTokenGenerator{GenerateTokenFunc: func(userID uint, role entity.Role) (string, error) {
			assert.Equal(t, testUser.ID, userID)
			assert.Equal(t, entity.RoleAlumni, role)
			return "signed", nil
		}}
		uc, _, _ := newTestUsecase(&mockUserRepository{FindByEmailFunc: findUser}, gen)

		token, user, err := uc.Login(context.Background(), "TEST@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "signed", token)
		assert.Equal(t, testUser.ID, user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		uc, _, _ := newTestUsecase(&mockUserRepository{FindByEmailFunc: findUser}, nil)

		_, _, errUnknown := uc.Login(context.Background(), "nobody@example.com", "password123")
		_, _, errWrong := uc.Login(context.Background(), "test@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		repo := &mockUserRepository{FindByEmailFunc: func(context.Context, string) (*entity.User, error) {
			return nil, storeErr
		}}
		uc, _, _ := newTestUsecase(repo, nil)

		_, _, err := uc.Login(context.Background(), "test@example.com", "password123")
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("signing failure", func(t *testing.T) {
		t.Parallel()

		gen := &mockTokenGenerator{GenerateTokenFunc: func(uint, entity.Role) (string, error) {
			return "", errors.New("sign failed")
		}}
		uc, _, _ := newTestUsecase(&mockUserRepository{FindByEmailFunc: findUser}, gen)

		_, _, err := uc.Login(context.Background(), "test@example.com", "password123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate token")
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Parallel()

	uc, rev, _ := newTestUsecase(&mockUserRepository{}, nil)
	exp := time.Now().Add(time.Hour)

	require.NoError(t, uc.Logout(context.Background(), 3, "jti-3", exp))
	require.Len(t, rev.calls, 1)
	assert.Equal(t, revokeCall{"jti-3", 3, exp}, rev.calls[0])
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	t.Parallel()

	newUser := func() *entity.User {
		return &entity.User{ID: 5, Email: "s@campus.edu", Password: mustHash(t, "old-password"), Role: entity.RoleStudent}
	}

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		u := newUser()
		saved := false
		repo := &mockUserRepository{
			FindByIDFunc: func(context.Context, uint) (*entity.User, error) { return u, nil },
			SaveFunc:     func(context.Context, *entity.User) error { saved = true; return nil },
		}
		uc, rev, _ := newTestUsecase(repo, nil)

		_, err := uc.ChangePassword(context.Background(), 5, "jti", time.Now().Add(time.Hour), "nope-nope", "new-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.False(t, saved)
		assert.Empty(t, rev.calls)
	})

	t.Run("success revokes presented token", func(t *testing.T) {
		t.Parallel()

		u := newUser()
		var saved *entity.User
		repo := &mockUserRepository{
			FindByIDFunc: func(context.Context, uint) (*entity.User, error) { return u, nil },
			SaveFunc:     func(_ context.Context, user *entity.User) error { saved = user; return nil },
		}
		uc, rev, _ := newTestUsecase(repo, nil)

		token, err := uc.ChangePassword(context.Background(), 5, "jti-old", time.Now().Add(time.Hour), "old-password", "new-password")
		require.NoError(t, err)

		assert.Equal(t, "mock-jwt-token", token)
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("new-password")))
		assert.NotNil(t, saved.PasswordChangedAt)
		require.Len(t, rev.calls, 1)
		assert.Equal(t, "jti-old", rev.calls[0].jti)
	})

	t.Run("weak new password", func(t *testing.T) {
		t.Parallel()

		u := newUser()
		repo := &mockUserRepository{FindByIDFunc: func(context.Context, uint) (*entity.User, error) { return u, nil }}
		uc, _, _ := newTestUsecase(repo, nil)

		_, err := uc.ChangePassword(context.Background(), 5, "jti", time.Now().Add(time.Hour), "old-password", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("over-long new password", func(t *testing.T) {
		t.Parallel()

		u := newUser()
		saved := false
		repo := &mockUserRepository{
			FindByIDFunc: func(context.Context, uint) (*entity.User, error) { return u, nil },
			SaveFunc:     func(context.Context, *entity.User) error { saved = true; return nil },
		}
		uc, _, _ := newTestUsecase(repo, nil)

		_, err := uc.ChangePassword(context.Background(), 5, "jti", time.Now().Add(time.Hour), "old-password", strings.Repeat("p", 80))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.False(t, saved)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"minimum length", strings.Repeat("p", minPasswordLength), nil},
		{"one below minimum", strings.Repeat("p", minPasswordLength-1), ErrWeakPassword},
		{"exactly the bcrypt limit", strings.Repeat("p", maxPasswordLength), nil},
		{"one over the bcrypt limit", strings.Repeat("p", maxPasswordLength+1), ErrPasswordTooLong},
		{"multi-byte runes count as bytes", strings.Repeat("é", 40), ErrPasswordTooLong},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, apperr.Is(err, apperr.Validation), "client input errors map to 400")
		})
	}
}

func TestAuthUsecase_ForgotAndResetPassword(t *testing.T) {
	t.Parallel()

	user := &entity.User{ID: 8, Email: "s@campus.edu", Password: mustHash(t, "old-password"), Role: entity.RoleStudent}
	var stored *entity.User
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, ErrUserNotFound
		},
		SaveFunc: func(_ context.Context, u *entity.User) error {
			cp := *u
			stored = &cp
			return nil
		},
		FindByResetTokenHashFunc: func(_ context.Context, hash string) (*entity.User, error) {
			if stored != nil && stored.ResetTokenHash != nil && *stored.ResetTokenHash == hash {
				cp := *stored
				return &cp, nil
			}
			return nil, ErrUserNotFound
		},
	}
	uc, _, mailer := newTestUsecase(repo, nil)
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, "s@campus.edu"))
	require.NotNil(t, stored)
	require.NotNil(t, stored.ResetTokenHash)
	assert.Equal(t, "s@campus.edu", mailer.to)
	require.True(t, strings.HasPrefix(mailer.link, "http://localhost:5173/reset-password/"))

	raw := strings.TrimPrefix(mailer.link, "http://localhost:5173/reset-password/")
	assert.NotEqual(t, raw, *stored.ResetTokenHash, "only the hash is stored")
	assert.Equal(t, hashResetToken(raw), *stored.ResetTokenHash)

	assert.ErrorIs(t, uc.ResetPassword(ctx, "forged", "new-password"), ErrResetTokenInvalid)
	require.NoError(t, uc.ResetPassword(ctx, raw, "new-password"))

	assert.Nil(t, stored.ResetTokenHash)
	assert.NotNil(t, stored.PasswordChangedAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new-password")))

	assert.ErrorIs(t, uc.ResetPassword(ctx, raw, "another-password"), ErrResetTokenInvalid, "token is single use")
}

func TestAuthUsecase_ForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	uc, _, mailer := newTestUsecase(&mockUserRepository{}, nil)

	require.NoError(t, uc.ForgotPassword(context.Background(), "ghost@campus.edu"))
	assert.Empty(t, mailer.link)
}

func TestAuthUsecase_ResetPassword_Expired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Minute)
	hash := hashResetToken("raw")
	repo := &mockUserRepository{FindByResetTokenHashFunc: func(context.Context, string) (*entity.User, error) {
		return &entity.User{ID: 1, ResetTokenHash: &hash, ResetTokenExpiresAt: &past}, nil
	}}
	uc, _, _ := newTestUsecase(repo, nil)

	assert.ErrorIs(t, uc.ResetPassword(context.Background(), "raw", "new-password"), ErrResetTokenInvalid)
	assert.ErrorIs(t, uc.ResetPassword(context.Background(), "", "new-password"), ErrResetTokenInvalid)
}

func TestAuthUsecase_EnsureAdmin(t *testing.T) {
	t.Parallel()

	t.Run("creates admin once", func(t *testing.T) {
		t.Parallel()

		var created *entity.User
		repo := &mockUserRepository{CreateFunc: func(_ context.Context, u *entity.User) error {
			created = u
			return nil
		}}
		uc, _, _ := newTestUsecase(repo, nil)

		require.NoError(t, uc.EnsureAdmin(context.Background(), "Placement Admin", "Admin@Campus.edu", "admin-password"))
		require.NotNil(t, created)
		assert.Equal(t, entity.RoleAdmin, created.Role)
		assert.Equal(t, "admin@campus.edu", created.Email)
	})

	t.Run("existing account untouched", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{
			FindByEmailFunc: func(context.Context, string) (*entity.User, error) { return &entity.User{ID: 1}, nil },
			CreateFunc: func(context.Context, *entity.User) error {
				t.Error("Create must not be called")
				return nil
			},
		}
		uc, _, _ := newTestUsecase(repo, nil)

		assert.NoError(t, uc.EnsureAdmin(context.Background(), "Admin", "admin@campus.edu", "admin-password"))
	})

	t.Run("no email configured", func(t *testing.T) {
		t.Parallel()

		uc, _, _ := newTestUsecase(&mockUserRepository{}, nil)
		assert.NoError(t, uc.EnsureAdmin(context.Background(), "Admin", "", ""))
	})
}
