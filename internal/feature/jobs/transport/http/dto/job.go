// Package dto defines request and response bodies for the job endpoints.
package dto

import (
	"fmt"
	"time"

	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/jobs/usecase"
)

// JobReq is the body of POST /jobs and PUT /jobs/:id. On PUT every field is optional.
type JobReq struct {
	Title           *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Company         *string  `json:"company" binding:"omitempty,min=1,max=255"`
	Description     *string  `json:"description"`
	RequiredSkills  []string `json:"requiredSkills" binding:"omitempty,dive,max=100"`
	Type            *string  `json:"type" binding:"omitempty,oneof=on-campus off-campus"`
	Batch           *int     `json:"batch" binding:"omitempty,min=1900,max=2200"`
	RelevanceScore  *int     `json:"relevanceScore"`
	Deadline        *string  `json:"deadline"`
	Expiry          *string  `json:"expiry"`
	ApplicationLink *string  `json:"applicationLink" binding:"omitempty,url"`
	Author          *string  `json:"author" binding:"omitempty,max=255"`
}

// Missing lists required fields absent from a create request.
func (r JobReq) Missing() []string {
	var out []string
	if r.Title == nil || *r.Title == "" {
		out = append(out, "title")
	}
	if r.Company == nil || *r.Company == "" {
		out = append(out, "company")
	}
	if r.Type == nil {
		out = append(out, "type")
	}
	return out
}

// ToInput converts the request into a usecase.JobInput, parsing the dates.
func (r JobReq) ToInput() (usecase.JobInput, error) {
	in := usecase.JobInput{
		Title:           r.Title,
		Company:         r.Company,
		Description:     r.Description,
		RequiredSkills:  r.RequiredSkills,
		Batch:           r.Batch,
		RelevanceScore:  r.RelevanceScore,
		ApplicationLink: r.ApplicationLink,
		Author:          r.Author,
	}
	if r.Type != nil {
		t := entity.JobType(*r.Type)
		in.Type = &t
	}
	var err error
	if in.Deadline, err = parseDate("deadline", r.Deadline); err != nil {
		return usecase.JobInput{}, err
	}
	if in.Expiry, err = parseDate("expiry", r.Expiry); err != nil {
		return usecase.JobInput{}, err
	}
	return in, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s must be YYYY-MM-DD or RFC 3339, got %q", field, *s)
}

// VoteStatus mirrors how the client renders the viewer's vote.
type VoteStatus string

const (
	VoteNone      VoteStatus = "NONE"
	VoteUpvoted   VoteStatus = "UPVOTED"
	VoteDownvoted VoteStatus = "DOWNVOTED"
)

// JobResponse is the public view of a posting.
type JobResponse struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Company           string     `json:"company"`
	Description       string     `json:"description"`
	RequiredSkills    []string   `json:"requiredSkills"`
	Type              string     `json:"type"`
	Batch             int        `json:"batch,omitempty"`
	RelevanceScore    int        `json:"relevanceScore"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Expiry            *time.Time `json:"expiry,omitempty"`
	ApplicationLink   string     `json:"applicationLink,omitempty"`
	Author            string     `json:"author,omitempty"`
	Score             int        `json:"score"`
	StudentVoteStatus VoteStatus `json:"studentVoteStatus"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// ToJobResponse converts a job and the viewer's vote into its public view.
func ToJobResponse(j entity.Job, myVote int) JobResponse {
	status := VoteNone
	switch myVote {
	case 1:
		status = VoteUpvoted
	case -1:
		status = VoteDownvoted
	}
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:                j.ID,
		Title:             j.Title,
		Company:           j.Company,
		Description:       j.Description,
		RequiredSkills:    skills,
		Type:              string(j.Type),
		Batch:             j.Batch,
		RelevanceScore:    j.RelevanceScore,
		Deadline:          j.Deadline,
		Expiry:            j.Expiry,
		ApplicationLink:   j.ApplicationLink,
		Author:            j.Author,
		Score:             j.Score,
		StudentVoteStatus: status,
		CreatedAt:         j.CreatedAt,
	}
}

// ToListResponse converts listings for the GET /jobs body.
func ToListResponse(ls []usecase.Listing) []JobResponse {
	out := make([]JobResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, ToJobResponse(l.Job, l.MyVote))
	}
	return out
}
