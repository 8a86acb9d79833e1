// Package dto defines request and response bodies for the profile endpoints.
package dto

import (
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/profile/usecase"
)

// ProfileReq is the body of POST and PUT /profile/me.
type ProfileReq struct {
	Name       *string  `json:"name" binding:"omitempty,max=255"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	StudentID  *string  `json:"studentID" binding:"omitempty,max=64"`
	Discipline *string  `json:"discipline" binding:"omitempty,max=255"`
	Program    *string  `json:"program" binding:"omitempty,max=255"`
	CGPA       *float64 `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Batch      *int     `json:"batch" binding:"omitempty,min=1900,max=2200"`
	Status     *string  `json:"status" binding:"omitempty,max=64"`
	ImageURL   *string  `json:"imageUrl" binding:"omitempty,max=1024"`
	ResumeURL  *string  `json:"resumeUrl" binding:"omitempty,max=1024"`
}

func (r ProfileReq) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		Name:            r.Name,
		Email:           r.Email,
		StudentID:       r.StudentID,
		Discipline:      r.Discipline,
		Program:         r.Program,
		CGPA:            r.CGPA,
		Batch:           r.Batch,
		Status:          r.Status,
		ProfilePhotoURL: r.ImageURL,
		ResumeLink:      r.ResumeURL,
	}
}

// ProfileResponse flattens the account and its profile. Profile fields are
// empty when the account has none.
type ProfileResponse struct {
	UserID     uint            `json:"userId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       authentity.Role `json:"role"`
	HasProfile bool            `json:"hasProfile"`
	StudentID  string          `json:"studentID"`
	Discipline string          `json:"discipline"`
	Program    string          `json:"program"`
	CGPA       *float64        `json:"cgpa"`
	Batch      int             `json:"batch,omitempty"`
	Status     string          `json:"status"`
	ImageURL   string          `json:"imageUrl"`
	ResumeURL  string          `json:"resumeUrl"`
}

func ToProfileResponse(p usecase.Profile) ProfileResponse {
	out := ProfileResponse{
		UserID: p.User.ID,
		Name:   p.User.Name,
		Email:  p.User.Email,
		Role:   p.User.Role,
	}
	if s := p.Student; s != nil {
		out.HasProfile = true
		out.StudentID = s.StudentID
		out.Discipline = s.Discipline
		out.Program = s.Program
		out.CGPA = s.CGPA
		out.Batch = s.Batch
		out.Status = s.Status
		out.ImageURL = s.ProfilePhotoURL
		out.ResumeURL = s.ResumeLink
	}
	return out
}
