// Package dto defines request and response bodies for the application endpoints.
package dto

import (
	"time"

	"ccps_backend/internal/feature/applications/domain/entity"
	"ccps_backend/internal/feature/applications/usecase"
	jobdto "ccps_backend/internal/feature/jobs/transport/http/dto"
)

// ApplyReq is the body of POST /applications/apply. The student is always the caller.
type ApplyReq struct {
	JobID   uint   `json:"jobId" binding:"required"`
	Resume  string `json:"resume" binding:"max=1024"`
	Phone   string `json:"phone" binding:"max=32"`
	Address string `json:"address" binding:"max=512"`
}

// ToInput converts the request into a usecase.ApplyInput.
func (r ApplyReq) ToInput() usecase.ApplyInput {
	return usecase.ApplyInput{JobID: r.JobID, Resume: r.Resume, Phone: r.Phone, Address: r.Address}
}

// StatusReq is the body of PATCH /applications/:id/status.
type StatusReq struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	ID        uint                  `json:"id"`
	StudentID uint                  `json:"studentId"`
	JobID     uint                  `json:"jobId"`
	Resume    string                `json:"resume"`
	Phone     string                `json:"phone"`
	Address   string                `json:"address"`
	Status    entity.Status         `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Job       *jobdto.JobResponse   `json:"job,omitempty"`
	Student   *ApplicantStudentInfo `json:"student,omitempty"`
}

type ApplicantStudentInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToApplicationResponse(a entity.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		JobID:     a.JobID,
		Resume:    a.Resume,
		Phone:     a.Phone,
		Address:   a.Address,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToEntryResponses renders applications with their jobs embedded.
func ToEntryResponses(entries []usecase.Entry) []ApplicationResponse {
	out := make([]ApplicationResponse, len(entries))
	for i, e := range entries {
		r := ToApplicationResponse(e.Application)
		job := jobdto.ToJobResponse(e.Job, 0)
		r.Job = &job
		out[i] = r
	}
	return out
}

// ToApplicantResponses renders applications with the applying student embedded.
func ToApplicantResponses(applicants []usecase.Applicant) []ApplicationResponse {
	out := make([]ApplicationResponse, len(applicants))
	for i, a := range applicants {
		r := ToApplicationResponse(a.Application)
		r.Student = &ApplicantStudentInfo{ID: a.StudentID, Name: a.StudentName, Email: a.StudentEmail}
		out[i] = r
	}
	return out
}
