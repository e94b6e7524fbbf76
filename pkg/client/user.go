package client

import (
	"bytes"
	"encoding/json"
)

// ID is a user identifier. Servers differ on whether ids are numeric or
// string, so both JSON forms decode into the string representation.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// User mirrors the account record returned by the API.
type User struct {
	ID                 ID     `json:"id"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	IsActive           bool   `json:"is_active"`
	LanguagePreference string `json:"language_preference"`
	PhoneNumber        string `json:"phone_number"`
	ProfileCompleted   bool   `json:"profile_completed"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. Registering does not log the
// account in; a subsequent Login is required.
type Registration struct {
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	LanguagePreference string `json:"language_preference,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
}
