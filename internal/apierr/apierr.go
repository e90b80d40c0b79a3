package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

func ProfileNotFound() *Error {
	return NotFound("profile_not_found", errors.New("profile not found"))
}

func InstitutionNotFound() *Error {
	return NotFound("institution_not_found", errors.New("institution not found"))
}

func ProgramNotFound() *Error {
	return NotFound("program_not_found", errors.New("program not found"))
}

func TrajectoryNotFound() *Error {
	return NotFound("trajectory_not_found", errors.New("trajectory not found"))
}

func RecommendationNotFound() *Error {
	return NotFound("recommendation_not_found", errors.New("recommendation not found"))
}

// StatusOf maps any error to the HTTP status it should surface as.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

func CodeOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		return apiErr.Code
	}
	return "internal_error"
}
