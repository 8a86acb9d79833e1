package usecase

import (
	"context"
	"strings"
	"time"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/platform/authz"
)

// JobRepository abstracts job storage.
type JobRepository interface {
	List(ctx context.Context) ([]entity.Job, error)
	FindByID(ctx context.Context, id uint) (*entity.Job, error)
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uint) error

	// Vote records userID's vote on jobID, replacing any earlier vote, and
	// returns the recomputed score.
	Vote(ctx context.Context, jobID, userID uint, value int) (int, error)

	// VotesByUser maps job id to the vote value userID cast on it.
	VotesByUser(ctx context.Context, userID uint) (map[uint]int, error)
}

// JobInput holds the editable fields of a posting.
// On update, nil fields are left unchanged.
type JobInput struct {
	Title           *string
	Company         *string
	Description     *string
	RequiredSkills  []string
	Type            *entity.JobType
	Batch           *int
	RelevanceScore  *int
	Deadline        *time.Time
	Expiry          *time.Time
	ApplicationLink *string
	Author          *string
}

// Listing is a job as seen by one viewer. MyVote is 0 when the viewer has not voted.
type Listing struct {
	Job    entity.Job
	MyVote int
}

type jobUsecase struct {
	jobs JobRepository
}

// NewJobUsecase creates the job usecase.
func NewJobUsecase(jobs JobRepository) *jobUsecase {
	return &jobUsecase{jobs: jobs}
}

// List returns every posting, newest first, annotated with the viewer's votes.
func (u *jobUsecase) List(ctx context.Context, viewer authz.Identity) ([]Listing, error) {
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := u.viewerVotes(ctx, viewer)
	if err != nil {
		return nil, err
	}
	out := make([]Listing, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, Listing{Job: j, MyVote: votes[j.ID]})
	}
	return out, nil
}

// Get returns one posting.
func (u *jobUsecase) Get(ctx context.Context, viewer authz.Identity, id uint) (Listing, error) {
	job, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	votes, err := u.viewerVotes(ctx, viewer)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Job: *job, MyVote: votes[job.ID]}, nil
}

// Create adds a posting. Only admins may create postings.
func (u *jobUsecase) Create(ctx context.Context, actor authz.Identity, in JobInput) (*entity.Job, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	job := &entity.Job{CreatedBy: actor.UserID}
	apply(job, in)
	if job.Author == "" && actor.User != nil {
		job.Author = actor.User.Name
	}
	if err := validate(job); err != nil {
		return nil, err
	}
	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update changes the given fields of a posting. Only admins may update postings.
func (u *jobUsecase) Update(ctx context.Context, actor authz.Identity, id uint, in JobInput) (*entity.Job, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	job, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(job, in)
	if err := validate(job); err != nil {
		return nil, err
	}
	if err := u.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a posting and its votes. Only admins may delete postings.
func (u *jobUsecase) Delete(ctx context.Context, actor authz.Identity, id uint) error {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return err
	}
	return u.jobs.Delete(ctx, id)
}

// Vote records a student's +1 or -1. Voting again replaces the earlier vote.
func (u *jobUsecase) Vote(ctx context.Context, actor authz.Identity, id uint, value int) (Listing, error) {
	if err := authz.RequireRole(actor, authentity.RoleStudent); err != nil {
		return Listing{}, err
	}
	if value != 1 && value != -1 {
		return Listing{}, ErrInvalidVote
	}
	if _, err := u.jobs.Vote(ctx, id, actor.UserID, value); err != nil {
		return Listing{}, err
	}
	job, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Job: *job, MyVote: value}, nil
}

func (u *jobUsecase) viewerVotes(ctx context.Context, viewer authz.Identity) (map[uint]int, error) {
	if viewer.Role != authentity.RoleStudent {
		return nil, nil
	}
	return u.jobs.VotesByUser(ctx, viewer.UserID)
}

func apply(job *entity.Job, in JobInput) {
	if in.Title != nil {
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Company != nil {
		job.Company = strings.TrimSpace(*in.Company)
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.RequiredSkills != nil {
		job.RequiredSkills = in.RequiredSkills
	}
	if in.Type != nil {
		job.Type = *in.Type
	}
	if in.Batch != nil {
		job.Batch = *in.Batch
	}
	if in.RelevanceScore != nil {
		job.RelevanceScore = *in.RelevanceScore
	}
	if in.Deadline != nil {
		job.Deadline = in.Deadline
	}
	if in.Expiry != nil {
		job.Expiry = in.Expiry
	}
	if in.ApplicationLink != nil {
		job.ApplicationLink = *in.ApplicationLink
	}
	if in.Author != nil {
		job.Author = *in.Author
	}
}

func validate(job *entity.Job) error {
	if !job.Type.Valid() {
		return ErrInvalidJobType
	}
	if job.Deadline != nil && job.Expiry != nil && job.Deadline.After(*job.Expiry) {
		return ErrDeadlineAfterExpiry
	}
	return nil
}
