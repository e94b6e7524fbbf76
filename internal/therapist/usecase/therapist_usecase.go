package usecase

import (
	authdomain "caresync/internal/auth/domain"
	authrepo "caresync/internal/auth/repository"
	therapistdomain "caresync/internal/therapist/domain"
	therapistdto "caresync/internal/therapist/dto"
	"caresync/internal/therapist/repository"

	"go.uber.org/zap"
)

// therapistUsecase implements TherapistUsecase interface
type therapistUsecase struct {
	therapistRepo repository.TherapistRepository
	userRepo      authrepo.UserRepository
	log           *zap.Logger
}

// NewTherapistUsecase creates a new instance of therapistUsecase
func NewTherapistUsecase(therapistRepo repository.TherapistRepository, userRepo authrepo.UserRepository, log *zap.Logger) TherapistUsecase {
	return &therapistUsecase{
		therapistRepo: therapistRepo,
		userRepo:      userRepo,
		log:           log.With(zap.String("module", "therapist")),
	}
}

func (u *therapistUsecase) List(filter *therapistdto.ListFilter) (*therapistdto.ListResponse, error) {
	filter.Normalize()

	profiles, total, err := u.therapistRepo.List(filter)
	if err != nil {
		return nil, err
	}

	pages := int(total) / filter.PerPage
	if int(total)%filter.PerPage > 0 {
		pages++
	}

	return &therapistdto.ListResponse{
		Therapists: profiles,
		Pagination: therapistdto.Pagination{
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   total,
			Pages:   pages,
			HasNext: filter.Page < pages,
			HasPrev: filter.Page > 1,
		},
	}, nil
}

func (u *therapistUsecase) GetByID(id string) (*therapistdomain.TherapistProfile, error) {
	profile, err := u.therapistRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrTherapistNotFound
	}
	return profile, nil
}

func (u *therapistUsecase) UpsertOwnProfile(user *authdomain.User, req *therapistdto.UpsertProfileRequest) (*therapistdomain.TherapistProfile, error) {
	existing, err := u.therapistRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	profile := existing
	if profile == nil {
		profile = &therapistdomain.TherapistProfile{UserID: user.ID}
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.LicenseNumber = req.LicenseNumber
	profile.Specialization = req.Specialization
	profile.ExperienceYears = req.ExperienceYears
	profile.Education = req.Education
	profile.Languages = req.Languages
	profile.Availability = req.Availability
	profile.HourlyRate = req.HourlyRate
	profile.Bio = req.Bio

	if existing == nil {
		err = u.therapistRepo.Create(profile)
	} else {
		err = u.therapistRepo.Update(profile)
	}
	if err != nil {
		return nil, err
	}

	if !user.ProfileCompleted {
		user.ProfileCompleted = true
		if err := u.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	u.log.Info("therapist profile saved", zap.String("user_id", user.ID))
	return profile, nil
}
