// Package dto defines request and response bodies for the alumni endpoints.
package dto

import (
	"ccps_backend/internal/feature/alumni/domain/entity"
	"ccps_backend/internal/feature/alumni/usecase"
)

type AlumniJobReq struct {
	ID   string `json:"id" binding:"max=128"`
	Role string `json:"role" binding:"max=255"`
}

// AlumniReq is the body of POST /alumni, PUT /alumni/:id and PUT /alumni/me.
// UserID is honoured only on the admin endpoints.
type AlumniReq struct {
	Name         *string         `json:"name" binding:"omitempty,max=255"`
	Company      *string         `json:"company" binding:"omitempty,max=255"`
	LinkedIn     *string         `json:"linkedin" binding:"omitempty,max=512"`
	InstituteID  *string         `json:"instituteId" binding:"omitempty,max=64"`
	MobileNumber *string         `json:"mobileNumber" binding:"omitempty,max=32"`
	Email        *string         `json:"email" binding:"omitempty,email"`
	Batch        *int            `json:"batch" binding:"omitempty,min=1900,max=2200"`
	Jobs         *[]AlumniJobReq `json:"jobs" binding:"omitempty,dive"`
	UserID       *uint           `json:"userId"`
}

func (r AlumniReq) ToInput() usecase.AlumniInput {
	in := usecase.AlumniInput{
		Name:         r.Name,
		Company:      r.Company,
		LinkedIn:     r.LinkedIn,
		InstituteID:  r.InstituteID,
		MobileNumber: r.MobileNumber,
		Email:        r.Email,
		Batch:        r.Batch,
		UserID:       r.UserID,
	}
	if r.Jobs != nil {
		jobs := make([]usecase.JobInput, len(*r.Jobs))
		for i, j := range *r.Jobs {
			jobs[i] = usecase.JobInput{JobID: j.ID, Role: j.Role}
		}
		in.Jobs = &jobs
	}
	return in
}

type AlumniJobResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type AlumniResponse struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Company      string              `json:"company"`
	LinkedIn     string              `json:"linkedin"`
	InstituteID  string              `json:"instituteId"`
	MobileNumber string              `json:"mobileNumber"`
	Email        string              `json:"email"`
	Batch        int                 `json:"batch"`
	Jobs         []AlumniJobResponse `json:"jobs"`
	UserID       *uint               `json:"userId,omitempty"`
}

func ToAlumniResponse(a entity.Alumni) AlumniResponse {
	jobs := make([]AlumniJobResponse, len(a.Jobs))
	for i, j := range a.Jobs {
		jobs[i] = AlumniJobResponse{ID: j.JobID, Role: j.Role}
	}
	return AlumniResponse{
		ID:           a.ID,
		Name:         a.Name,
		Company:      a.Company,
		LinkedIn:     a.LinkedIn,
		InstituteID:  a.InstituteID,
		MobileNumber: a.MobileNumber,
		Email:        a.Email,
		Batch:        a.Batch,
		Jobs:         jobs,
		UserID:       a.UserID,
	}
}

func ToAlumniList(list []entity.Alumni) []AlumniResponse {
	out := make([]AlumniResponse, len(list))
	for i, a := range list {
		out[i] = ToAlumniResponse(a)
	}
	return out
}
