// Package dto defines request and response bodies for the referral endpoints.
package dto

import (
	"time"

	"ccps_backend/internal/feature/referrals/domain/entity"
	"ccps_backend/internal/feature/referrals/usecase"
)

// RequestReferralReq is the body of POST /referrals.
type RequestReferralReq struct {
	CompanyName string `json:"companyName" binding:"required,max=255"`
	JobID       string `json:"jobId" binding:"required,max=128"`
	ResumeLink  string `json:"resumeLink" binding:"required,max=1024"`
}

func (r RequestReferralReq) ToInput() usecase.RequestInput {
	return usecase.RequestInput{CompanyName: r.CompanyName, JobID: r.JobID, ResumeLink: r.ResumeLink}
}

// ProvideReq is the body of PUT /referrals/:id/provide.
type ProvideReq struct {
	ReferralLink string `json:"referralLink" binding:"required,max=1024"`
}

type ReferralResponse struct {
	ID           uint          `json:"id"`
	StudentID    uint          `json:"studentId"`
	StudentName  string        `json:"studentName"`
	StudentEmail string        `json:"studentEmail"`
	CompanyName  string        `json:"companyName"`
	JobID        string        `json:"jobId"`
	ResumeLink   string        `json:"resumeLink"`
	ReferralLink string        `json:"referralLink,omitempty"`
	Status       entity.Status `json:"status"`
	ProvidedBy   *uint         `json:"providedBy,omitempty"`
	AlumniEmail  string        `json:"alumniEmail,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func ToReferralResponse(r entity.Referral) ReferralResponse {
	return ReferralResponse{
		ID:           r.ID,
		StudentID:    r.StudentID,
		StudentName:  r.StudentName,
		StudentEmail: r.StudentEmail,
		CompanyName:  r.CompanyName,
		JobID:        r.JobID,
		ResumeLink:   r.ResumeLink,
		ReferralLink: r.ReferralLink,
		Status:       r.Status,
		ProvidedBy:   r.ProvidedBy,
		AlumniEmail:  r.AlumniEmail,
		CreatedAt:    r.CreatedAt,
	}
}

func ToReferralList(list []entity.Referral) []ReferralResponse {
	out := make([]ReferralResponse, len(list))
	for i, r := range list {
		out[i] = ToReferralResponse(r)
	}
	return out
}
