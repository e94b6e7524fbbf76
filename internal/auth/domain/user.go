package domain

import "time"

// Role distinguishes therapist accounts from patient accounts.
type Role string

const (
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
)

// Valid reports whether the role is one of the known account roles.
func (r Role) Valid() bool {
	return r == RoleTherapist || r == RolePatient
}

// User is the base account record for both therapists and patients.
// Accounts are never hard-deleted; deactivation flips IsActive instead.
type User struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash       string    `json:"-" gorm:"not null"` // Never return password in JSON
	Role               Role      `json:"role" gorm:"not null"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	LanguagePreference string    `json:"language_preference" gorm:"size:2;default:he"` // he, ar, en
	PhoneNumber        string    `json:"phone_number,omitempty" gorm:"size:20"`
	ProfileCompleted   bool      `json:"profile_completed" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
