package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for them; the typed errors below
// match their sentinel as well.
var (
	// ErrInvalidURL indicates the input is not a recognized YouTube video URL.
	ErrInvalidURL = errors.New("invalid youtube url")
	// ErrNotFound indicates the provider has no video for the identifier.
	ErrNotFound = errors.New("video not found")
	// ErrProvider indicates a transport or parse failure talking to the provider.
	ErrProvider = errors.New("provider error")
	// ErrDuplicate indicates a project with the same name and channel exists.
	ErrDuplicate = errors.New("project already exists")
	// ErrValidation indicates a project is missing a required field.
	ErrValidation = errors.New("validation failed")
)

// ProviderError wraps a failure of the external metadata provider.
type ProviderError struct {
	VideoID YoutubeVideoID
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("fetch metadata for %s: %v", e.VideoID, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
