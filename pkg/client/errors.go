package client

import (
	"fmt"
	"strings"
)

// Notifier receives the user-facing message for a failed request. A nil
// notifier is allowed; messages are then dropped.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// APIError is a request that completed with a non-success status, or failed
// to complete at all (Status 0 for network and timeout errors).
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "request failed: " + e.Message
	}
	if len(e.Errors) > 0 {
		return fmt.Sprintf("status %d: %s", e.Status, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

// Notification maps the error to the user-facing message shown for it.
// The mapping is a fixed table keyed by status class.
func (e *APIError) Notification() string {
	switch {
	case e.Status == 0:
		return "Unable to reach the server. Please check your connection and try again."
	case e.Status == 401:
		return "Your session has expired. Please sign in again."
	case e.Status == 403:
		return "You do not have permission to perform this action."
	case e.Status == 404:
		return "The requested resource was not found."
	case e.Status == 422:
		if len(e.Errors) > 0 {
			return strings.Join(e.Errors, "\n")
		}
		return "Some fields are invalid. Please review and try again."
	case e.Status == 429:
		return "Too many requests. Please wait a moment and try again."
	case e.Status >= 500:
		return "Something went wrong on our end. Please try again later."
	case e.Message != "":
		return e.Message
	default:
		return "The request could not be completed."
	}
}
