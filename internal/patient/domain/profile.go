package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Preferences stores therapy preferences as a JSON object.
type Preferences map[string]interface{}

func (p Preferences) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("unsupported type for Preferences")
		}
	}
	return json.Unmarshal(bytes, p)
}

// PatientProfile holds personal information for a patient account.
type PatientProfile struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	UserID           string      `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName        string      `json:"first_name" gorm:"size:50;not null"`
	LastName         string      `json:"last_name" gorm:"size:50;not null"`
	DateOfBirth      *time.Time  `json:"date_of_birth,omitempty"`
	Gender           string      `json:"gender,omitempty" gorm:"size:20"`
	Location         string      `json:"location,omitempty" gorm:"size:100"`
	TherapyHistory   string      `json:"therapy_history,omitempty"`
	Preferences      Preferences `json:"preferences" gorm:"type:jsonb"`
	EmergencyContact string      `json:"emergency_contact,omitempty" gorm:"size:100"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
