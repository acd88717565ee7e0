package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid key", fmt.Errorf("%w: empty", domain.ErrInvalidKey), http.StatusBadRequest, "INVALID_KEY"},
		{"download not found", fmt.Errorf("%w: photos/a.jpg: %w", domain.ErrDownload, domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"metadata not found", fmt.Errorf("%w: %w", domain.ErrMetadata, domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"authentication", domain.ErrAuthentication, http.StatusUnauthorized, "AUTHENTICATION_FAILED"},
		{"not connected", domain.ErrNotConnected, http.StatusUnauthorized, "NOT_CONNECTED"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"decode", fmt.Errorf("%w: unknown format", domain.ErrDecode), http.StatusUnprocessableEntity, "DECODE_ERROR"},
		{"partial delete", domain.ErrDeletionPartial, http.StatusMultiStatus, "DELETION_PARTIAL"},
		{"upload", domain.ErrUpload, http.StatusBadGateway, "UPLOAD_ERROR"},
		{"list", domain.ErrList, http.StatusBadGateway, "LIST_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err)

			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromError_KeepsAppError(t *testing.T) {
	original := BadRequest("nope")
	wrapped := fmt.Errorf("handler: %w", original)

	assert.Same(t, original, FromError(wrapped))
	assert.Equal(t, http.StatusBadRequest, StatusCode(wrapped))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "nope", BadRequest("nope").Error())
	assert.Equal(t, "an internal error occurred: boom", Internal(errors.New("boom")).Error())
}
