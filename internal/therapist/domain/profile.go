package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a JSON array in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("unsupported type for StringList")
		}
	}
	return json.Unmarshal(bytes, l)
}

// Schedule stores the weekly availability as a JSON object keyed by weekday.
type Schedule map[string]interface{}

func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return errors.New("unsupported type for Schedule")
		}
	}
	return json.Unmarshal(bytes, s)
}

// TherapistProfile holds professional information for a therapist account.
type TherapistProfile struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	UserID          string     `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName       string     `json:"first_name" gorm:"size:50;not null"`
	LastName        string     `json:"last_name" gorm:"size:50;not null"`
	LicenseNumber   string     `json:"license_number" gorm:"size:50;uniqueIndex;not null"`
	Specialization  string     `json:"specialization" gorm:"size:100;not null"`
	ExperienceYears int        `json:"experience_years" gorm:"not null"`
	Education       string     `json:"education,omitempty"`
	Languages       StringList `json:"languages" gorm:"type:jsonb"`
	Availability    Schedule   `json:"availability" gorm:"type:jsonb"`
	HourlyRate      float64    `json:"hourly_rate"`
	Bio             string     `json:"bio,omitempty"`
	Verified        bool       `json:"verified" gorm:"default:false"`
	Rating          float64    `json:"rating" gorm:"default:0"`
	TotalReviews    int        `json:"total_reviews" gorm:"default:0"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
