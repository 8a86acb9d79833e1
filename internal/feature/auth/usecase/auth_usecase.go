package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ccps_backend/internal/feature/auth/domain/entity"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcryptの入力上限（バイト数）

	// dummyHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化します。メールアドレスが重複する場合は ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error

	// Save は既存ユーザーの全カラムを更新します。
	Save(ctx context.Context, user *entity.User) error

	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*entity.User, error)
}

// TokenGenerator はセッショントークンを発行します。
type TokenGenerator interface {
	GenerateToken(userID uint, role entity.Role) (string, error)
}

// TokenRevoker はトークンIDを、そのトークンの有効期限まで失効リストに登録します。
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error
}

// Mailer はパスワードリセット用リンクを送信します。
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

// SignupInput はユーザー登録時の入力値です。
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// Options はauthユースケースの設定です。
type Options struct {
	// ResetTokenTTL はリセットリンクの有効期間
	ResetTokenTTL time.Duration

	// ResetURLBase はメールで送るリンクのベースURL（末尾にトークンを付与）
	ResetURLBase string
}

type authUsecase struct {
	users   UserRepository
	tokens  TokenGenerator
	revoker TokenRevoker
	mailer  Mailer
	opts    Options
	now     func() time.Time
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, revoker TokenRevoker, mailer Mailer, opts Options) *authUsecase {
	return &authUsecase{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		mailer:  mailer,
		opts:    opts,
		now:     time.Now,
	}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// adminロールは選択できません。メールアドレスの重複はストアのユニークインデックスで検出します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if !in.Role.SelfAssignable() {
		return nil, ErrRoleNotAllowed
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    normalizeEmail(in.Email),
		Password: hashed,
		Role:     in.Role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// Logout は提示されたトークンを失効させます。
func (u *authUsecase) Logout(ctx context.Context, userID uint, jti string, expiresAt time.Time) error {
	return u.revoker.Revoke(ctx, jti, userID, expiresAt)
}

// ChangePassword は現在のパスワードを確認してから新しいパスワードに置き換えます。
// それ以前に発行されたトークンはすべて無効になり、新しいトークンを返します。
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, jti string, expiresAt time.Time, current, next string) (string, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return "", ErrWrongPassword
	}
	if err := u.setPassword(ctx, user, next); err != nil {
		return "", err
	}
	if err := u.revoker.Revoke(ctx, jti, userID, expiresAt); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ForgotPassword は使い捨てのリセットトークンを発行し、リンクをメールで送ります。
// ユーザー列挙攻撃を防止するため、未登録のメールアドレスでも成功として扱います。
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		slog.Info("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	raw, err := newResetToken()
	if err != nil {
		return err
	}
	hash := hashResetToken(raw)
	expires := u.now().Add(u.opts.ResetTokenTTL)
	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expires
	if err := u.users.Save(ctx, user); err != nil {
		return err
	}

	link := strings.TrimRight(u.opts.ResetURLBase, "/") + "/" + raw
	return u.mailer.SendPasswordReset(ctx, user.Email, link)
}

// ResetPassword はリセットトークンを消費して新しいパスワードを設定します。
func (u *authUsecase) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}
	user, err := u.users.FindByResetTokenHash(ctx, hashResetToken(token))
	if errors.Is(err, ErrUserNotFound) {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}
	if user.ResetTokenExpiresAt == nil || !u.now().Before(*user.ResetTokenExpiresAt) {
		return ErrResetTokenInvalid
	}
	return u.setPassword(ctx, user, password)
}

// EnsureAdmin は初期管理者アカウントを作成します。登録済みのメールアドレスなら何もしません。
func (u *authUsecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	err = u.users.Create(ctx, &entity.User{Name: name, Email: email, Password: hashed, Role: entity.RoleAdmin})
	if errors.Is(err, ErrEmailAlreadyExists) {
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("admin account created", "email", email)
	return nil
}

// setPassword は新しいハッシュを保存し、リセットトークンを消して変更時刻を記録します。
func (u *authUsecase) setPassword(ctx context.Context, user *entity.User, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	now := u.now()
	user.Password = hashed
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil
	user.PasswordChangedAt = &now
	return u.users.Save(ctx, user)
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
