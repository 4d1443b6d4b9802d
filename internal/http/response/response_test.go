package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": "abc"})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"id": "abc"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something broke")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		ServiceName string  `validate:"required"`
		Amount      float64 `validate:"required,gt=0"`
		Status      string  `validate:"required,oneof=Active Expired"`
		Email       string  `validate:"omitempty,email"`
	}

	v := validator.New()
	err := v.Struct(req{Amount: -1, Status: "Paused", Email: "not-an-email"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field ServiceName is a required field")
	assert.Contains(t, resp.Error, "field Amount must be greater than 0")
	assert.Contains(t, resp.Error, "field Status must be one of: Active Expired")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
}
