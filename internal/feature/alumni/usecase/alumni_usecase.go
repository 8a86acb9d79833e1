package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ccps_backend/internal/feature/alumni/domain/entity"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/shared/apperr"
)

// SearchField selects what an alumni search matches against.
type SearchField string

const (
	SearchByJobID   SearchField = "id"
	SearchByRole    SearchField = "role"
	SearchByCompany SearchField = "company"
	SearchByBatch   SearchField = "batch"
	SearchByName    SearchField = "name"
)

// Query is a single-field search. Text fields match case-insensitive substrings;
// job id and batch match exactly.
type Query struct {
	Field SearchField
	Text  string
	Batch int
}

// AlumniRepository abstracts alumni storage. Entries are always returned with their jobs.
type AlumniRepository interface {
	List(ctx context.Context) ([]entity.Alumni, error)
	Search(ctx context.Context, q Query) ([]entity.Alumni, error)
	FindByID(ctx context.Context, id uint) (*entity.Alumni, error)
	FindByUserID(ctx context.Context, userID uint) (*entity.Alumni, error)
	Create(ctx context.Context, a *entity.Alumni) error
	// Update writes a and replaces its job list.
	Update(ctx context.Context, a *entity.Alumni) error
	Delete(ctx context.Context, id uint) error
}

// JobInput is one position in an AlumniInput.
type JobInput struct {
	JobID string
	Role  string
}

// AlumniInput carries the editable fields. Nil fields are left unchanged on update.
type AlumniInput struct {
	Name         *string
	Company      *string
	LinkedIn     *string
	InstituteID  *string
	MobileNumber *string
	Email        *string
	Batch        *int
	Jobs         *[]JobInput
	UserID       *uint
}

type alumniUsecase struct {
	alumni AlumniRepository
}

// NewAlumniUsecase creates the alumni usecase.
func NewAlumniUsecase(alumni AlumniRepository) *alumniUsecase {
	return &alumniUsecase{alumni: alumni}
}

func (u *alumniUsecase) List(ctx context.Context) ([]entity.Alumni, error) {
	return u.alumni.List(ctx)
}

// Search runs a directory search. raw is the query-string value for field.
func (u *alumniUsecase) Search(ctx context.Context, field SearchField, raw string) ([]entity.Alumni, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperr.New(apperr.Validation, fmt.Sprintf("%s is required", searchParamLabel(field)))
	}
	q := Query{Field: field, Text: raw}
	switch field {
	case SearchByJobID, SearchByRole, SearchByCompany, SearchByName:
	case SearchByBatch:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.New(apperr.Validation, fmt.Sprintf("invalid batch %q", raw))
		}
		q.Batch = n
	default:
		return nil, apperr.New(apperr.Validation, fmt.Sprintf("unknown search field %q", field))
	}
	found, err := u.alumni.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNoMatches
	}
	return found, nil
}

func (u *alumniUsecase) Create(ctx context.Context, actor authz.Identity, in AlumniInput) (*entity.Alumni, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, ErrNameRequired
	}
	a := &entity.Alumni{}
	apply(a, in, true)
	if err := u.alumni.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *alumniUsecase) Update(ctx context.Context, actor authz.Identity, id uint, in AlumniInput) (*entity.Alumni, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	a, err := u.alumni.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(a, in, true)
	if err := u.alumni.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *alumniUsecase) Delete(ctx context.Context, actor authz.Identity, id uint) error {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return err
	}
	return u.alumni.Delete(ctx, id)
}

// Me returns the entry linked to the caller's account.
func (u *alumniUsecase) Me(ctx context.Context, actor authz.Identity) (*entity.Alumni, error) {
	if err := authz.RequireRole(actor, authentity.RoleAlumni); err != nil {
		return nil, err
	}
	return u.alumni.FindByUserID(ctx, actor.UserID)
}

// UpdateMe edits the entry linked to the caller's account. The link itself cannot be changed.
func (u *alumniUsecase) UpdateMe(ctx context.Context, actor authz.Identity, in AlumniInput) (*entity.Alumni, error) {
	a, err := u.Me(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwnerOrRole(actor, a); err != nil {
		return nil, err
	}
	apply(a, in, false)
	if err := u.alumni.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func apply(a *entity.Alumni, in AlumniInput, allowLink bool) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&a.Name, in.Name)
	set(&a.Company, in.Company)
	set(&a.LinkedIn, in.LinkedIn)
	set(&a.InstituteID, in.InstituteID)
	set(&a.MobileNumber, in.MobileNumber)
	set(&a.Email, in.Email)
	if in.Batch != nil {
		a.Batch = *in.Batch
	}
	if in.Jobs != nil {
		jobs := make([]entity.AlumniJob, len(*in.Jobs))
		for i, j := range *in.Jobs {
			jobs[i] = entity.AlumniJob{AlumniID: a.ID, JobID: j.JobID, Role: j.Role}
		}
		a.Jobs = jobs
	}
	if allowLink && in.UserID != nil {
		if *in.UserID == 0 {
			a.UserID = nil
		} else {
			uid := *in.UserID
			a.UserID = &uid
		}
	}
}

func searchParamLabel(field SearchField) string {
	switch field {
	case SearchByJobID:
		return "jobId"
	case SearchByRole:
		return "jobRole"
	}
	return string(field)
}
