package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Category string

const (
	CategoryValidation   Category = "VALIDATION"
	CategoryNotFound     Category = "NOT_FOUND"
	CategoryConflict     Category = "CONFLICT"
	CategoryUnauthorized Category = "UNAUTHORIZED"
	CategoryInternal     Category = "INTERNAL"
)

type DomainError interface {
	error
	Code() string
	Category() Category
	HTTPStatus() int
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category Category
	status   int
	message  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string       { return e.code }
func (e *domainError) Category() Category { return e.category }
func (e *domainError) HTTPStatus() int    { return e.status }
func (e *domainError) Message() string    { return e.message }
func (e *domainError) Unwrap() error      { return e.cause }

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		cause:    cause,
	}
}

func (e *domainError) Is(target error) bool {
	other, ok := target.(*domainError)
	return ok && other.code == e.code
}

func New(code string, category Category, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Uniqueness conflicts report 400 rather than 409 to keep the public
// contract of the HTTP API unchanged.
var (
	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		CategoryConflict,
		http.StatusBadRequest,
		"email already registered",
	)

	ErrUsernameTaken = New(
		"USERNAME_TAKEN",
		CategoryConflict,
		http.StatusBadRequest,
		"username already registered",
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"user not found",
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"invalid username or password",
	)

	ErrInternal = New(
		"INTERNAL",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)
)
