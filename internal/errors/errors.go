package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user exists for a username.
	ErrUserNotFound = errors.New("user doesn't exist")
	// ErrBadCredentials is returned when the password does not match.
	ErrBadCredentials = errors.New("wrong username and password combination")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidUsername is returned when the username fails the pattern rule.
	ErrInvalidUsername = errors.New("username must be at least 3 word characters")
	// ErrCarNotFound is returned when a car does not exist for this owner.
	ErrCarNotFound = errors.New("car not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Authentication failures
// map uniformly to 401, validation failures to 400, uniqueness conflicts to
// 409; anything unrecognized is a 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBadCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "BAD_CREDENTIALS")
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrInvalidUsername):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	case errors.Is(err, ErrCarNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CAR_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
