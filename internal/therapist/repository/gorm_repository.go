package repository

import (
	"errors"
	"time"

	therapistdomain "caresync/internal/therapist/domain"
	therapistdto "caresync/internal/therapist/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTherapistRepository implements TherapistRepository using GORM
type gormTherapistRepository struct {
	db *gorm.DB
}

// NewTherapistRepository creates a new GORM-based TherapistRepository
func NewTherapistRepository(db *gorm.DB) TherapistRepository {
	return &gormTherapistRepository{db: db}
}

func (r *gormTherapistRepository) List(filter *therapistdto.ListFilter) ([]*therapistdomain.TherapistProfile, int64, error) {
	var profiles []*therapistdomain.TherapistProfile
	var total int64

	query := r.db.Model(&therapistdomain.TherapistProfile{}).
		Joins("JOIN users ON users.id = therapist_profiles.user_id").
		Where("users.role = ?", "therapist").
		Where("users.is_active = ?", true)

	if filter.Specialization != "" {
		query = query.Where("therapist_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
	}
	if filter.Verified != nil {
		query = query.Where("therapist_profiles.verified = ?", *filter.Verified)
	}
	if filter.MinRating > 0 {
		query = query.Where("therapist_profiles.rating >= ?", filter.MinRating)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	err := query.Order("therapist_profiles.rating DESC, therapist_profiles.created_at ASC").
		Limit(filter.PerPage).Offset(offset).Find(&profiles).Error

	return profiles, total, err
}

func (r *gormTherapistRepository) FindByID(id string) (*therapistdomain.TherapistProfile, error) {
	var profile therapistdomain.TherapistProfile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormTherapistRepository) FindByUserID(userID string) (*therapistdomain.TherapistProfile, error) {
	var profile therapistdomain.TherapistProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormTherapistRepository) Create(profile *therapistdomain.TherapistProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	return r.db.Create(profile).Error
}

func (r *gormTherapistRepository) Update(profile *therapistdomain.TherapistProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}
