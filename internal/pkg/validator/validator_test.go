package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikara/signon/internal/pkg/models"
)

func TestValidateVerifyRequest(t *testing.T) {
	v := New()

	testCases := []struct {
		name       string
		req        models.VerifyRequest
		wantFields []string
	}{
		{
			name: "Valid",
			req:  models.VerifyRequest{Email: "user@example.com", Code: "123456"},
		},
		{
			name:       "Malformed email",
			req:        models.VerifyRequest{Email: "not-an-email", Code: "123456"},
			wantFields: []string{"email"},
		},
		{
			name:       "Wrong code length",
			req:        models.VerifyRequest{Email: "user@example.com", Code: "123"},
			wantFields: []string{"code"},
		},
		{
			name:       "Both missing",
			req:        models.VerifyRequest{},
			wantFields: []string{"email", "code"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			fields := FieldErrors(err)
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestFieldErrorMessages(t *testing.T) {
	v := New()

	err := v.Validate(&models.VerifyRequest{Email: "user@example.com", Code: "12"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Must be exactly 6 characters", fields["code"])
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	fields := FieldErrors(assert.AnError)
	assert.Equal(t, "Invalid input", fields["form"])
}
