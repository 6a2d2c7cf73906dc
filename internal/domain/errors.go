package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested document does not exist in the store
	ErrNotFound = errors.New("document not found")

	// ErrServerOffline indicates the document store is unreachable
	ErrServerOffline = errors.New("document store is unreachable")

	// ErrAuthFailed indicates the project credentials were rejected
	ErrAuthFailed = errors.New("project credentials were rejected")

	// ErrRequestRejected indicates the store answered with a non-success status
	ErrRequestRejected = errors.New("request rejected by document store")

	// ErrProgramNotFound indicates a like toggle referenced an unknown program
	ErrProgramNotFound = errors.New("program not found")

	// ErrMissingFields indicates a required form field was left empty
	ErrMissingFields = errors.New("please fill in both fields")

	// ErrInvalidEmail indicates the email address is not local@domain.tld-shaped
	ErrInvalidEmail = errors.New("please enter a valid email address")

	// ErrEmptyMessage indicates the contact message body was left empty
	ErrEmptyMessage = errors.New("please enter a message")

	// ErrShareUnavailable indicates no share capability is configured
	ErrShareUnavailable = errors.New("sharing is not available")

	// ErrContactDisabled indicates no messages collection is configured
	ErrContactDisabled = errors.New("contact messages are not configured")
)
