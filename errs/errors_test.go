package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "taxId", Message: "is required"}
	assert.Equal(t, `starkbank: validation error on "taxId": is required`, err.Error())

	err = &ValidationError{Message: "unknown parameters: foo"}
	assert.Equal(t, "starkbank: validation error: unknown parameters: foo", err.Error())
}

func TestApiError_HasCode(t *testing.T) {
	err := &ApiError{
		StatusCode: 400,
		Errors: []ErrorElement{
			{Code: "invalidAmount", Message: "amount must be positive"},
			{Code: "invalidTaxId", Message: "tax id is invalid"},
		},
	}

	assert.True(t, err.HasCode("invalidTaxId"))
	assert.False(t, err.HasCode("invalidName"))
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalidAmount: amount must be positive")
}

func TestNetworkError_Unwrap(t *testing.T) {
	err := fmt.Errorf("query: %w", &NetworkError{Method: "GET", Path: "/transfer", Err: context.DeadlineExceeded})

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, IsNetwork(err))
	assert.False(t, IsValidation(err))
}

func TestHelpers(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", &ApiError{StatusCode: 500})

	apiErr, ok := AsApiError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 500, apiErr.StatusCode)

	_, ok = AsApiError(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, IsAuthentication(&AuthenticationError{Message: "no user"}))
	assert.True(t, IsValidation(fmt.Errorf("x: %w", &ValidationError{Message: "bad"})))
}
