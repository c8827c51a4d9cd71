package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]string{"id": "1"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeWebsiteNotFound, "no website resolved")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeWebsiteNotFound, resp.Error.Code)
	assert.Equal(t, "no website resolved", resp.Error.Message)
}

func TestErrorWithDetails(t *testing.T) {
	resp := ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", map[string]string{"slug": "must be lowercase"})

	assert.False(t, resp.Success)
	assert.Equal(t, "must be lowercase", resp.Error.Details["slug"])
}

func TestPaginated(t *testing.T) {
	resp := Paginated([]int{1, 2, 3}, 2, 20, 45)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PerPage)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeWebsiteNotFound, http.StatusNotFound},
		{ErrCodeWebsiteInactive, http.StatusNotFound},
		{ErrCodeNotWebsiteOwner, http.StatusForbidden},
		{ErrCodeInvalidSlug, http.StatusBadRequest},
		{ErrCodeReservedSlug, http.StatusBadRequest},
		{ErrCodeSlugTaken, http.StatusConflict},
		{ErrCodeInvalidStatus, http.StatusConflict},
		{ErrCodeAlreadyCancelled, http.StatusConflict},
		{ErrCodeCannotCancelCompleted, http.StatusConflict},
		{ErrCodeAlreadyReviewed, http.StatusConflict},
		{ErrCodeNotCompleted, http.StatusConflict},
		{ErrCodeEmailTaken, http.StatusConflict},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeMissingToken, http.StatusUnauthorized},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Authentication required", Unauthorized("").Error.Message)
	assert.Equal(t, "Access denied", Forbidden("").Error.Message)
	assert.Equal(t, "Resource not found", NotFound("").Error.Message)
	assert.Equal(t, "An internal error occurred", InternalError("").Error.Message)
}
