package usecase

import (
	"errors"

	authdomain "caresync/internal/auth/domain"
	therapistdomain "caresync/internal/therapist/domain"
	therapistdto "caresync/internal/therapist/dto"
)

var ErrTherapistNotFound = errors.New("therapist not found")

// TherapistUsecase covers the public directory and a therapist's own
// profile management.
type TherapistUsecase interface {
	List(filter *therapistdto.ListFilter) (*therapistdto.ListResponse, error)
	GetByID(id string) (*therapistdomain.TherapistProfile, error)
	UpsertOwnProfile(user *authdomain.User, req *therapistdto.UpsertProfileRequest) (*therapistdomain.TherapistProfile, error)
}
