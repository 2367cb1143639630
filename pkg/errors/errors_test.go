package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{ErrCodeUserNotFound, http.StatusNotFound},
		{40400, http.StatusNotFound},
		{40100, http.StatusUnauthorized},
		{ErrCodeInvalidParams, http.StatusBadRequest},
		{ErrCodeBlankField, http.StatusBadRequest},
		{ErrCodeTooYoung, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{0, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("错误码%d", tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatus())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	t.Run("无内部错误", func(t *testing.T) {
		assert.Equal(t, "[40401] User is not found", New(ErrCodeUserNotFound, "User is not found").Error())
	})

	t.Run("带内部错误", func(t *testing.T) {
		err := Wrap(errors.New("disk full"), "save failed")
		assert.Equal(t, "[50000] save failed: disk full", err.Error())
	})
}

func TestGetAppError(t *testing.T) {
	t.Run("错误链中的AppError", func(t *testing.T) {
		inner := Newf(ErrCodeBlankField, "%s can't be blank", "email")
		wrapped := fmt.Errorf("patch: %w", inner)

		assert.Same(t, inner, GetAppError(wrapped))
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		raw := errors.New("boom")
		appErr := GetAppError(raw)

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "internal server error", appErr.Message)
		assert.ErrorIs(t, appErr, raw)
	})
}
