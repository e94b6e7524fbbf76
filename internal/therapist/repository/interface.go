package repository

import (
	therapistdomain "caresync/internal/therapist/domain"
	therapistdto "caresync/internal/therapist/dto"
)

// TherapistRepository defines persistence operations for therapist profiles.
type TherapistRepository interface {
	List(filter *therapistdto.ListFilter) ([]*therapistdomain.TherapistProfile, int64, error)
	FindByID(id string) (*therapistdomain.TherapistProfile, error)
	FindByUserID(userID string) (*therapistdomain.TherapistProfile, error)
	Create(profile *therapistdomain.TherapistProfile) error
	Update(profile *therapistdomain.TherapistProfile) error
}
