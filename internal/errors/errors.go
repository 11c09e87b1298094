package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken is returned when a privileged request carries no Authorization header.
	ErrMissingToken = errors.New("missing token")
	// ErrTokenInvalid is returned when a token is malformed, badly signed or expired.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrForbidden is returned when a valid token lacks the admin role.
	ErrForbidden = errors.New("forbidden")
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("not found")
	// ErrInvalidPayload is returned when a request body is not a JSON object.
	ErrInvalidPayload = errors.New("invalid payload")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error(), "MISSING_TOKEN")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusUnauthorized, ErrTokenInvalid.Error(), "TOKEN_INVALID")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProductNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidPayload):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPayload.Error(), "INVALID_PAYLOAD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
