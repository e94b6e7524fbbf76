package usecase

import (
	"errors"
	"time"

	authdomain "caresync/internal/auth/domain"
	authrepo "caresync/internal/auth/repository"
	patientdomain "caresync/internal/patient/domain"
	patientdto "caresync/internal/patient/dto"
	"caresync/internal/patient/repository"

	"go.uber.org/zap"
)

var ErrProfileNotFound = errors.New("patient profile not found")

// PatientUsecase covers a patient's own profile management.
type PatientUsecase interface {
	GetOwnProfile(user *authdomain.User) (*patientdomain.PatientProfile, error)
	UpsertOwnProfile(user *authdomain.User, req *patientdto.UpsertProfileRequest) (*patientdomain.PatientProfile, error)
}

// patientUsecase implements PatientUsecase interface
type patientUsecase struct {
	patientRepo repository.PatientRepository
	userRepo    authrepo.UserRepository
	log         *zap.Logger
}

// NewPatientUsecase creates a new instance of patientUsecase
func NewPatientUsecase(patientRepo repository.PatientRepository, userRepo authrepo.UserRepository, log *zap.Logger) PatientUsecase {
	return &patientUsecase{
		patientRepo: patientRepo,
		userRepo:    userRepo,
		log:         log.With(zap.String("module", "patient")),
	}
}

func (u *patientUsecase) GetOwnProfile(user *authdomain.User) (*patientdomain.PatientProfile, error) {
	profile, err := u.patientRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (u *patientUsecase) UpsertOwnProfile(user *authdomain.User, req *patientdto.UpsertProfileRequest) (*patientdomain.PatientProfile, error) {
	existing, err := u.patientRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	profile := existing
	if profile == nil {
		profile = &patientdomain.PatientProfile{UserID: user.ID}
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Gender = req.Gender
	profile.Location = req.Location
	profile.TherapyHistory = req.TherapyHistory
	profile.Preferences = req.Preferences
	profile.EmergencyContact = req.EmergencyContact

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if existing == nil {
		err = u.patientRepo.Create(profile)
	} else {
		err = u.patientRepo.Update(profile)
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

	u.log.Info("patient profile saved", zap.String("user_id", user.ID))
	return profile, nil
}
