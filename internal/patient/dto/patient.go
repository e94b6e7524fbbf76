package dto

import patientdomain "caresync/internal/patient/domain"

type UpsertProfileRequest struct {
	FirstName        string                    `json:"first_name" binding:"required,max=50"`
	LastName         string                    `json:"last_name" binding:"required,max=50"`
	DateOfBirth      string                    `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender           string                    `json:"gender" binding:"omitempty,max=20"`
	Location         string                    `json:"location" binding:"omitempty,max=100"`
	TherapyHistory   string                    `json:"therapy_history"`
	Preferences      patientdomain.Preferences `json:"preferences"`
	EmergencyContact string                    `json:"emergency_contact" binding:"omitempty,max=100"`
}
