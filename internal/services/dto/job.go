package dto

import "jobsfi_backend/internal/models"

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Company     string `json:"company" validate:"required,min=2,max=200"`
	Location    string `json:"location" validate:"required,max=200"`
	Salary      string `json:"salary" validate:"max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Employer    string `json:"employer" validate:"max=200"`
	Category    string `json:"category" validate:"omitempty,job_category"`
}

// UpdateJobRequest - частичное обновление: nil-поля не трогаются.
type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=200"`
	Company     *string `json:"company" validate:"omitempty,min=2,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Salary      *string `json:"salary" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,min=10"`
	Employer    *string `json:"employer" validate:"omitempty,max=200"`
	Category    *string `json:"category" validate:"omitempty,job_category"`
	IsOpen      *bool   `json:"isOpen"`
}

type ApplyToJobRequest struct {
	ApplicantName string `json:"applicantName" validate:"required,min=2,max=200"`
	ResumeIPFS    string `json:"resumeIpfs" validate:"required,max=100"`
	Message       string `json:"message" validate:"max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=accepted rejected"`
}

type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int          `json:"total"`
}

type ApplicationListResponse struct {
	Applications []models.JobApplication `json:"applications"`
	Total        int                     `json:"total"`
}
