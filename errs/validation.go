package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-side validation errors. These are caught before any network call
// and surfaced inline on the form, never through the notification sink.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrNoSkillsSelected     = errors.New("no skills selected")
	ErrDuplicateEntry       = errors.New("duplicate entry")
	ErrStaleResponse        = errors.New("stale response discarded")
)

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
		Cause:      ErrMissingRequiredField,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
		Cause:      ErrInvalidField,
	}
}

func NewNoSkillsSelectedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    "At least one skill must be selected",
		Field:      "skills",
		Cause:      ErrNoSkillsSelected,
	}
}

func NewDuplicateEntryError(fieldName, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("Duplicate entry in %s: %s", fieldName, value),
		Field:      fieldName,
		Cause:      ErrDuplicateEntry,
	}
}

func IsMissingRequiredFieldError(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return errors.Is(apiErr.Cause, ErrMissingRequiredField)
	}
	return false
}

func IsNoSkillsSelectedError(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return errors.Is(apiErr.Cause, ErrNoSkillsSelected)
	}
	return false
}
