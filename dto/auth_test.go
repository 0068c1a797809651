package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{"valid", SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}, false},
		{"missing name", SignupRequest{Email: "ana@example.com", Password: "secret1"}, true},
		{"missing email", SignupRequest{Name: "Ana", Password: "secret1"}, true},
		{"bad email", SignupRequest{Name: "Ana", Email: "not-an-email", Password: "secret1"}, true},
		{"short password", SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "ana@example.com", Password: "secret1"}.Validate())
	assert.Error(t, LoginRequest{Email: "ana@example.com"}.Validate())
	assert.Error(t, LoginRequest{Password: "secret1"}.Validate())
}

func TestProgressRequestValidate(t *testing.T) {
	assert.NoError(t, ProgressRequest{Email: "ana@example.com", Accuracy: 80}.Validate())
	assert.NoError(t, ProgressRequest{Email: "ana@example.com", Accuracy: 0}.Validate())
	assert.Error(t, ProgressRequest{Accuracy: 80}.Validate())
	assert.Error(t, ProgressRequest{Email: "ana@example.com", Accuracy: 101}.Validate())
	assert.Error(t, ProgressRequest{Email: "ana@example.com", Accuracy: -1}.Validate())
}

func TestValidationErrorMessage(t *testing.T) {
	err := SignupRequest{}.Validate()
	require.Error(t, err)

	resp := CreateValidationErrorResponse(err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Errors)
}
