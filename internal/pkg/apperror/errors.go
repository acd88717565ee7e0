package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func BadRequest(message string) *AppError {
	return New("BAD_REQUEST", message, http.StatusBadRequest)
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// kinds is checked in order; the first match wins. Not-found comes first
// because gateway errors wrap it together with their operation kind.
var kinds = []struct {
	target error
	code   string
	status int
}{
	{domain.ErrInvalidKey, "INVALID_KEY", http.StatusBadRequest},
	{domain.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
	{domain.ErrAuthentication, "AUTHENTICATION_FAILED", http.StatusUnauthorized},
	{domain.ErrNotConnected, "NOT_CONNECTED", http.StatusUnauthorized},
	{domain.ErrSessionNotFound, "NOT_CONNECTED", http.StatusUnauthorized},
	{domain.ErrTokenInvalid, "UNAUTHORIZED", http.StatusUnauthorized},
	{domain.ErrTokenExpired, "UNAUTHORIZED", http.StatusUnauthorized},
	{domain.ErrDecode, "DECODE_ERROR", http.StatusUnprocessableEntity},
	{domain.ErrDeletionPartial, "DELETION_PARTIAL", http.StatusMultiStatus},
	{domain.ErrUpload, "UPLOAD_ERROR", http.StatusBadGateway},
	{domain.ErrDownload, "DOWNLOAD_ERROR", http.StatusBadGateway},
	{domain.ErrMetadata, "METADATA_ERROR", http.StatusBadGateway},
	{domain.ErrDelete, "DELETE_ERROR", http.StatusBadGateway},
	{domain.ErrList, "LIST_ERROR", http.StatusBadGateway},
}

// FromError maps a domain error kind to its API representation. The message
// keeps the underlying description so clients can show it as is.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return &AppError{Code: k.code, Message: err.Error(), StatusCode: k.status, Err: err}
		}
	}
	return Internal(err)
}

func StatusCode(err error) int {
	return FromError(err).StatusCode
}
