package repository

import (
	"errors"
	"time"

	patientdomain "caresync/internal/patient/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository defines persistence operations for patient profiles.
type PatientRepository interface {
	FindByUserID(userID string) (*patientdomain.PatientProfile, error)
	Create(profile *patientdomain.PatientProfile) error
	Update(profile *patientdomain.PatientProfile) error
}

// gormPatientRepository implements PatientRepository using GORM
type gormPatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new GORM-based PatientRepository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &gormPatientRepository{db: db}
}

func (r *gormPatientRepository) FindByUserID(userID string) (*patientdomain.PatientProfile, error) {
	var profile patientdomain.PatientProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormPatientRepository) Create(profile *patientdomain.PatientProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	return r.db.Create(profile).Error
}

func (r *gormPatientRepository) Update(profile *patientdomain.PatientProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}
