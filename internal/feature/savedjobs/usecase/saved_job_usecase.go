package usecase

import (
	"context"
	"errors"

	jobentity "ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/savedjobs/domain/entity"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/shared/apperr"
)

// SavedJobRepository abstracts saved-job storage.
type SavedJobRepository interface {
	// Create inserts s. An existing (user, job) pair yields ErrAlreadySaved.
	Create(ctx context.Context, s *entity.SavedJob) error
	ListByUser(ctx context.Context, userID uint) ([]entity.SavedJob, error)
	// Delete removes the pair and reports whether it existed.
	Delete(ctx context.Context, userID, jobID uint) (bool, error)
}

// JobLookup reads job postings. A missing job must be an apperr.NotFound error.
type JobLookup interface {
	FindByID(ctx context.Context, id uint) (*jobentity.Job, error)
}

// Entry is a saved job together with the posting it refers to.
type Entry struct {
	Saved entity.SavedJob
	Job   jobentity.Job
}

type savedJobUsecase struct {
	saved SavedJobRepository
	jobs  JobLookup
}

// NewSavedJobUsecase creates the saved-job usecase.
func NewSavedJobUsecase(saved SavedJobRepository, jobs JobLookup) *savedJobUsecase {
	return &savedJobUsecase{saved: saved, jobs: jobs}
}

// Save bookmarks jobID for the caller. It reports false when the job was already saved.
func (u *savedJobUsecase) Save(ctx context.Context, actor authz.Identity, jobID uint) (bool, error) {
	if _, err := u.jobs.FindByID(ctx, jobID); err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return false, ErrJobNotFound
		}
		return false, err
	}
	err := u.saved.Create(ctx, &entity.SavedJob{UserID: actor.UserID, JobID: jobID})
	if errors.Is(err, ErrAlreadySaved) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns the caller's saved jobs, newest first. Jobs deleted since are skipped.
func (u *savedJobUsecase) List(ctx context.Context, actor authz.Identity) ([]Entry, error) {
	saved, err := u.saved.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(saved))
	for _, s := range saved {
		job, err := u.jobs.FindByID(ctx, s.JobID)
		if apperr.Is(err, apperr.NotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Saved: s, Job: *job})
	}
	return out, nil
}

// Remove deletes the caller's bookmark for jobID.
func (u *savedJobUsecase) Remove(ctx context.Context, actor authz.Identity, jobID uint) error {
	ok, err := u.saved.Delete(ctx, actor.UserID, jobID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSavedJobNotFound
	}
	return nil
}
