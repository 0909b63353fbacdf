package services

import (
	"errors"

	"github.com/rentora/rentora-backend/internal/dto"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("not allowed")
	ErrDuplicateReport   = errors.New("content already reported")
	ErrAlreadyAppealed   = errors.New("report already appealed")
	ErrInvalidTransition = errors.New("invalid report status transition")
	ErrContentRejected   = errors.New("content rejected by spam screening")
	ErrAccountRestricted = errors.New("account is suspended or banned")
)

// ValidationError carries the full list of field-level failures so the
// API can return them all at once.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Field + ": " + e.Fields[0].Message
	}
	return "validation failed"
}

// fieldErrors collects validation failures; nil result means valid.
type fieldErrors []dto.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, dto.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
