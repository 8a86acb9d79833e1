package usecase

import (
	"context"
	"time"

	"ccps_backend/internal/feature/applications/domain/entity"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	jobentity "ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/shared/apperr"
)

// ApplicationRepository abstracts application storage.
type ApplicationRepository interface {
	// Create inserts a. A duplicate (student, job) pair yields ErrAlreadyApplied.
	Create(ctx context.Context, a *entity.Application) error

	FindByID(ctx context.Context, id uint) (*entity.Application, error)
	FindByStudentAndJob(ctx context.Context, studentID, jobID uint) (*entity.Application, error)
	ListByStudent(ctx context.Context, studentID uint) ([]entity.Application, error)
	Applicants(ctx context.Context, jobID uint) ([]Applicant, error)

	// DeleteByID removes one application and reports whether it existed.
	DeleteByID(ctx context.Context, id uint) (bool, error)

	// DeleteByStudentAndJob removes studentID's application to jobID and
	// reports whether it existed.
	DeleteByStudentAndJob(ctx context.Context, studentID, jobID uint) (bool, error)

	// UpdateStatus moves application id from one status to another. It reports
	// false when the application is no longer in status from.
	UpdateStatus(ctx context.Context, id uint, from, to entity.Status) (bool, error)
}

// JobLookup reads job postings. A missing job must be an apperr.NotFound error.
type JobLookup interface {
	FindByID(ctx context.Context, id uint) (*jobentity.Job, error)
}

// Applicant is an application joined with the applying student's account.
type Applicant struct {
	entity.Application
	StudentName  string
	StudentEmail string
}

// Entry is an application together with the job it targets.
type Entry struct {
	Application entity.Application
	Job         jobentity.Job
}

// ApplyInput is what a student submits with an application.
type ApplyInput struct {
	JobID   uint
	Resume  string
	Phone   string
	Address string
}

type applicationUsecase struct {
	apps ApplicationRepository
	jobs JobLookup
	now  func() time.Time
}

// NewApplicationUsecase creates the application usecase.
func NewApplicationUsecase(apps ApplicationRepository, jobs JobLookup) *applicationUsecase {
	return &applicationUsecase{apps: apps, jobs: jobs, now: time.Now}
}

// StudentApplications returns the caller's own applications split by job type.
// Applications whose job has since been deleted are skipped.
func (u *applicationUsecase) StudentApplications(ctx context.Context, actor authz.Identity) (onCampus, offCampus []Entry, err error) {
	apps, err := u.apps.ListByStudent(ctx, actor.UserID)
	if err != nil {
		return nil, nil, err
	}
	onCampus, offCampus = []Entry{}, []Entry{}
	for _, a := range apps {
		job, err := u.jobs.FindByID(ctx, a.JobID)
		if apperr.Is(err, apperr.NotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		switch job.Type {
		case jobentity.JobTypeOnCampus:
			onCampus = append(onCampus, Entry{Application: a, Job: *job})
		case jobentity.JobTypeOffCampus:
			offCampus = append(offCampus, Entry{Application: a, Job: *job})
		}
	}
	return onCampus, offCampus, nil
}

// Apply files an application for the caller. The student id is always the caller's.
func (u *applicationUsecase) Apply(ctx context.Context, actor authz.Identity, in ApplyInput) (*entity.Application, error) {
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return nil, err
	}
	job, err := u.findJob(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if deadlinePassed(job.Deadline, u.now()) {
		return nil, ErrDeadlinePassed
	}
	app := &entity.Application{
		StudentID: actor.UserID,
		JobID:     job.ID,
		Resume:    in.Resume,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    entity.StatusApplied,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw deletes the caller's own application to jobID while it is still undecided.
func (u *applicationUsecase) Withdraw(ctx context.Context, actor authz.Identity, jobID uint) error {
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return err
	}
	app, err := u.apps.FindByStudentAndJob(ctx, actor.UserID, jobID)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrRole(actor, app); err != nil {
		return err
	}
	if app.Status.Terminal() {
		return ErrApplicationLocked
	}
	ok, err := u.apps.DeleteByID(ctx, app.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrApplicationNotFound
	}
	return nil
}

// Cancel is the admin removal of studentID's application to jobID.
func (u *applicationUsecase) Cancel(ctx context.Context, actor authz.Identity, jobID, studentID uint) error {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return err
	}
	if studentID == 0 {
		return ErrStudentRequired
	}
	ok, err := u.apps.DeleteByStudentAndJob(ctx, studentID, jobID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrApplicationNotFound
	}
	return nil
}

// Applicants lists every application to jobID with the applicants' names and emails.
func (u *applicationUsecase) Applicants(ctx context.Context, actor authz.Identity, jobID uint) ([]Applicant, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := u.findJob(ctx, jobID); err != nil {
		return nil, err
	}
	return u.apps.Applicants(ctx, jobID)
}

// UpdateStatus moves an application forward in review. Only admins decide.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, actor authz.Identity, id uint, next entity.Status) (*entity.Application, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	app, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	ok, err := u.apps.UpdateStatus(ctx, id, app.Status, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Someone else moved it first.
		return nil, ErrInvalidTransition
	}
	app.Status = next
	return app, nil
}

func (u *applicationUsecase) findJob(ctx context.Context, id uint) (*jobentity.Job, error) {
	job, err := u.jobs.FindByID(ctx, id)
	if apperr.Is(err, apperr.NotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

// deadlinePassed treats a date without a time of day as open until that day ends.
func deadlinePassed(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	end := *deadline
	if end.Equal(end.Truncate(24 * time.Hour)) {
		end = end.AddDate(0, 0, 1)
	}
	return !now.Before(end)
}
