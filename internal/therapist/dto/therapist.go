package dto

import therapistdomain "caresync/internal/therapist/domain"

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// ListFilter narrows the therapist directory query.
type ListFilter struct {
	Page           int
	PerPage        int
	Specialization string
	Verified       *bool
	MinRating      float64
}

// Normalize clamps pagination to sane bounds.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type ListResponse struct {
	Therapists []*therapistdomain.TherapistProfile `json:"therapists"`
	Pagination Pagination                          `json:"pagination"`
}

type UpsertProfileRequest struct {
	FirstName       string                     `json:"first_name" binding:"required,max=50"`
	LastName        string                     `json:"last_name" binding:"required,max=50"`
	LicenseNumber   string                     `json:"license_number" binding:"required,max=50"`
	Specialization  string                     `json:"specialization" binding:"required,max=100"`
	ExperienceYears int                        `json:"experience_years" binding:"required,min=0"`
	Education       string                     `json:"education"`
	Languages       therapistdomain.StringList `json:"languages"`
	Availability    therapistdomain.Schedule   `json:"availability"`
	HourlyRate      float64                    `json:"hourly_rate" binding:"omitempty,min=0"`
	Bio             string                     `json:"bio"`
}
