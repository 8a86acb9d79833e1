// Package dto defines request and response bodies for the saved-job endpoints.
package dto

import (
	"time"

	jobdto "ccps_backend/internal/feature/jobs/transport/http/dto"
	"ccps_backend/internal/feature/savedjobs/usecase"
)

// SaveReq is the body of POST /saved-jobs/save.
type SaveReq struct {
	JobID uint `json:"jobId" binding:"required"`
}

type SavedJobResponse struct {
	ID        uint               `json:"id"`
	JobID     uint               `json:"jobId"`
	CreatedAt time.Time          `json:"createdAt"`
	Job       jobdto.JobResponse `json:"job"`
}

func ToSavedJobResponses(entries []usecase.Entry) []SavedJobResponse {
	out := make([]SavedJobResponse, len(entries))
	for i, e := range entries {
		out[i] = SavedJobResponse{
			ID:        e.Saved.ID,
			JobID:     e.Saved.JobID,
			CreatedAt: e.Saved.CreatedAt,
			Job:       jobdto.ToJobResponse(e.Job, 0),
		}
	}
	return out
}
