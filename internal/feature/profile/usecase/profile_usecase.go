package usecase

import (
	"context"
	"errors"
	"strings"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/profile/domain/entity"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/shared/apperr"
)

// ErrDuplicate is returned by ProfileRepository.Create when a unique index rejects the row.
var ErrDuplicate = errors.New("duplicate student profile")

// ProfileRepository abstracts profile storage.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.StudentProfile) error
	// FindByUserID returns ErrProfileNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID uint) (*entity.StudentProfile, error)
	// Update stores p together with the account's name and email, atomically.
	// A nil account leaves the user row alone. It returns ErrStudentIDTaken or
	// ErrEmailTaken when a unique index rejects the change.
	Update(ctx context.Context, p *entity.StudentProfile, account *authentity.User) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// UserStore reads the account a profile belongs to.
type UserStore interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// Profile is an account joined with its academic profile, if any.
type Profile struct {
	User    authentity.User
	Student *entity.StudentProfile
}

// ProfileInput carries the editable fields. Nil fields are left unchanged.
type ProfileInput struct {
	Name            *string
	Email           *string
	StudentID       *string
	Discipline      *string
	Program         *string
	CGPA            *float64
	Batch           *int
	Status          *string
	ProfilePhotoURL *string
	ResumeLink      *string
}

type profileUsecase struct {
	profiles ProfileRepository
	users    UserStore
}

// NewProfileUsecase creates the profile usecase.
func NewProfileUsecase(profiles ProfileRepository, users UserStore) *profileUsecase {
	return &profileUsecase{profiles: profiles, users: users}
}

// Me returns the caller's account and profile. A missing profile is not an error.
func (u *profileUsecase) Me(ctx context.Context, actor authz.Identity) (*Profile, error) {
	return u.load(ctx, actor.UserID)
}

// ForUser is the admin view of any user's profile.
func (u *profileUsecase) ForUser(ctx context.Context, actor authz.Identity, userID uint) (*Profile, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	return u.load(ctx, userID)
}

// Create attaches a profile to the caller's account. Only students have profiles.
func (u *profileUsecase) Create(ctx context.Context, actor authz.Identity, in ProfileInput) (*Profile, error) {
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return nil, err
	}
	if blank(in.StudentID) || blank(in.Discipline) || in.Batch == nil || blank(in.Status) {
		return nil, ErrMissingFields
	}
	p := &entity.StudentProfile{UserID: actor.UserID}
	applyProfile(p, in)
	err := u.profiles.Create(ctx, p)
	if errors.Is(err, ErrDuplicate) {
		// Work out which unique index fired.
		if _, ferr := u.profiles.FindByUserID(ctx, actor.UserID); ferr == nil {
			return nil, ErrProfileExists
		}
		return nil, ErrStudentIDTaken
	}
	if err != nil {
		return nil, err
	}
	return u.withUser(ctx, actor.UserID, p)
}

// Update edits the caller's account name/email and profile fields.
func (u *profileUsecase) Update(ctx context.Context, actor authz.Identity, in ProfileInput) (*Profile, error) {
	if clearsRequired(in) {
		return nil, ErrMissingFields
	}
	p, err := u.profiles.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwnerOrRole(actor, p); err != nil {
		return nil, err
	}

	var account *authentity.User
	if !blank(in.Name) || !blank(in.Email) {
		if account, err = u.findUser(ctx, actor.UserID); err != nil {
			return nil, err
		}
		if !blank(in.Name) {
			account.Name = strings.TrimSpace(*in.Name)
		}
		if !blank(in.Email) {
			account.Email = strings.ToLower(strings.TrimSpace(*in.Email))
		}
	}

	applyProfile(p, in)
	if err := u.profiles.Update(ctx, p, account); err != nil {
		return nil, err
	}
	return u.withUser(ctx, actor.UserID, p)
}

// Delete removes the caller's profile. The account itself is kept.
func (u *profileUsecase) Delete(ctx context.Context, actor authz.Identity) error {
	return u.profiles.DeleteByUserID(ctx, actor.UserID)
}

func (u *profileUsecase) load(ctx context.Context, userID uint) (*Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}
	return u.withUser(ctx, userID, p)
}

func (u *profileUsecase) withUser(ctx context.Context, userID uint, p *entity.StudentProfile) (*Profile, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, Student: p}, nil
}

func (u *profileUsecase) findUser(ctx context.Context, id uint) (*authentity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if apperr.Is(err, apperr.NotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func applyProfile(p *entity.StudentProfile, in ProfileInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&p.StudentID, in.StudentID)
	set(&p.Discipline, in.Discipline)
	set(&p.Program, in.Program)
	set(&p.Status, in.Status)
	set(&p.ProfilePhotoURL, in.ProfilePhotoURL)
	set(&p.ResumeLink, in.ResumeLink)
	if in.CGPA != nil {
		v := *in.CGPA
		p.CGPA = &v
	}
	if in.Batch != nil {
		p.Batch = *in.Batch
	}
}

// clearsRequired reports whether an update would blank a required field.
func clearsRequired(in ProfileInput) bool {
	for _, f := range []*string{in.StudentID, in.Discipline, in.Status} {
		if f != nil && blank(f) {
			return true
		}
	}
	return false
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
