package dto

import authdomain "caresync/internal/auth/domain"

type RegisterRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	Role               string `json:"role" binding:"required,oneof=therapist patient"`
	LanguagePreference string `json:"language_preference" binding:"omitempty,oneof=he ar en"`
	PhoneNumber        string `json:"phone_number" binding:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	LanguagePreference *string `json:"language_preference" binding:"omitempty,oneof=he ar en"`
	PhoneNumber        *string `json:"phone_number" binding:"omitempty,max=20"`
}

type RegisterResponse struct {
	Message string           `json:"message"`
	User    *authdomain.User `json:"user"`
}

type TokenResponse struct {
	Message     string           `json:"message"`
	AccessToken string           `json:"access_token"`
	User        *authdomain.User `json:"user"`
}
