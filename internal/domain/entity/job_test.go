package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobStatusQueued.IsTerminal())
	assert.False(t, JobStatusRunning.IsTerminal())
	assert.True(t, JobStatusSucceeded.IsTerminal())
	assert.True(t, JobStatusFailed.IsTerminal())
}

func TestCredentialBundle_Validate(t *testing.T) {
	tests := []struct {
		name   string
		bundle *CredentialBundle
		want   bool
	}{
		{name: "nil bundle", bundle: nil, want: false},
		{name: "missing email", bundle: &CredentialBundle{RefreshToken: "r"}, want: false},
		{name: "missing refresh token", bundle: &CredentialBundle{Email: "a@x.com"}, want: false},
		{name: "blank refresh token", bundle: &CredentialBundle{Email: "a@x.com", RefreshToken: "  "}, want: false},
		{name: "complete", bundle: &CredentialBundle{Email: "a@x.com", RefreshToken: "r"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bundle.Validate())
		})
	}
}
