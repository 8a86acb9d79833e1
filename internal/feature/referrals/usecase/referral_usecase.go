package usecase

import (
	"context"
	"strings"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/referrals/domain/entity"
	"ccps_backend/internal/platform/authz"
)

// ReferralRepository abstracts referral storage.
type ReferralRepository interface {
	Create(ctx context.Context, r *entity.Referral) error
	FindByID(ctx context.Context, id uint) (*entity.Referral, error)
	// List returns every referral, or only studentID's when it is non-zero. Newest first.
	List(ctx context.Context, studentID uint) ([]entity.Referral, error)
	// Provide records the link on a pending referral. It reports false when the
	// referral was no longer pending.
	Provide(ctx context.Context, r *entity.Referral) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// RequestInput is what a student submits when asking for a referral.
type RequestInput struct {
	CompanyName string
	JobID       string
	ResumeLink  string
}

type referralUsecase struct {
	referrals ReferralRepository
}

// NewReferralUsecase creates the referral usecase.
func NewReferralUsecase(referrals ReferralRepository) *referralUsecase {
	return &referralUsecase{referrals: referrals}
}

// List shows students their own requests. Alumni and admins see every request.
func (u *referralUsecase) List(ctx context.Context, actor authz.Identity) ([]entity.Referral, error) {
	if actor.HasRole(authentity.RoleAlumni, authentity.RoleAdmin) {
		return u.referrals.List(ctx, 0)
	}
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return nil, err
	}
	return u.referrals.List(ctx, actor.UserID)
}

func (u *referralUsecase) Request(ctx context.Context, actor authz.Identity, in RequestInput) (*entity.Referral, error) {
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return nil, err
	}
	r := &entity.Referral{
		StudentID:   actor.UserID,
		CompanyName: strings.TrimSpace(in.CompanyName),
		JobID:       strings.TrimSpace(in.JobID),
		ResumeLink:  strings.TrimSpace(in.ResumeLink),
		Status:      entity.StatusPending,
	}
	if actor.User != nil {
		r.StudentName = actor.User.Name
		r.StudentEmail = actor.User.Email
	}
	if err := u.referrals.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Provide attaches a referral link to a pending request. Alumni and admins only.
func (u *referralUsecase) Provide(ctx context.Context, actor authz.Identity, id uint, link string) (*entity.Referral, error) {
	if err := authz.RequireRole(actor, authentity.RoleAlumni, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, ErrReferralLinkRequired
	}
	r, err := u.referrals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == entity.StatusProvided {
		return nil, ErrAlreadyProvided
	}
	r.ReferralLink = link
	r.Status = entity.StatusProvided
	r.ProvidedBy = &actor.UserID
	if actor.User != nil {
		r.AlumniEmail = actor.User.Email
	}
	ok, err := u.referrals.Provide(ctx, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyProvided
	}
	return r, nil
}

// Delete removes a request. Only the requesting student or an admin may.
func (u *referralUsecase) Delete(ctx context.Context, actor authz.Identity, id uint) error {
	r, err := u.referrals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrRole(actor, r, authentity.RoleAdmin); err != nil {
		return err
	}
	return u.referrals.Delete(ctx, id)
}
