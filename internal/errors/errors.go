package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the login email/password pair
	// does not match. The same value covers both an unknown email and a
	// wrong password so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a bearer token is missing, malformed,
	// expired, tampered with, or its subject no longer resolves to a user.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrNotOwner is returned when a user mutates another user's record.
	ErrNotOwner = errors.New("not the record owner")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNovelistExists is returned on a duplicate novelist name.
	ErrNovelistExists = errors.New("novelist already registered")
	// ErrNovelistNotFound is returned when a novelist id does not exist.
	ErrNovelistNotFound = errors.New("novelist not found")
	// ErrBookExists is returned on a duplicate book title.
	ErrBookExists = errors.New("book already registered")
	// ErrBookNotFound is returned when a book id does not exist.
	ErrBookNotFound = errors.New("book not found")
)

// API detail messages, kept in Portuguese as the MADR contract defines them.
const (
	DetailInvalidCredentials = "Email ou senha incorretos"
	DetailCouldNotValidate   = "Não foi possível validar as credenciais"
	DetailNotAuthorized      = "Não autorizado"
	DetailAccountExists      = "Conta já cadastrada"
	DetailEmailExists        = "Email já cadastrado"
	DetailNovelistExists     = "Romancista já cadastrado"
	DetailNovelistNotFound   = "Romancista não consta no MADR"
	DetailBookExists         = "Livro já consta no MADR"
	DetailBookNotFound       = "Livro não consta no MADR"
	MessageAccountDeleted    = "Conta deletada com sucesso"
)

// DetailResponse is the standard error body.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the standard confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code and API detail.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// ToDetail converts an HTTPError to its response body.
func (e *HTTPError) ToDetail() DetailResponse {
	return DetailResponse{Detail: e.Detail}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, DetailInvalidCredentials)
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, DetailCouldNotValidate)
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, DetailNotAuthorized)
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, DetailAccountExists)
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, DetailEmailExists)
	case errors.Is(err, ErrNovelistExists):
		return NewHTTPError(http.StatusConflict, DetailNovelistExists)
	case errors.Is(err, ErrNovelistNotFound):
		return NewHTTPError(http.StatusNotFound, DetailNovelistNotFound)
	case errors.Is(err, ErrBookExists):
		return NewHTTPError(http.StatusConflict, DetailBookExists)
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, DetailBookNotFound)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
