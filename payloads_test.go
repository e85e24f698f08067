package portal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	portal "github.com/swdepot/go-portal"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   portal.Credentials
		wantErr bool
	}{
		{"valid", portal.Credentials{Username: "alice", Password: "hunter2"}, false},
		{"missing username", portal.Credentials{Password: "hunter2"}, true},
		{"missing password", portal.Credentials{Username: "alice"}, true},
		{"username too short", portal.Credentials{Username: "al", Password: "hunter2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistrationValidate(t *testing.T) {
	valid := portal.Registration{
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "+1 415 555 2671",
		Password: "hunter22",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *portal.Registration)
	}{
		{"bad email", func(r *portal.Registration) { r.Email = "not-an-email" }},
		{"bad phone", func(r *portal.Registration) { r.Phone = "12" }},
		{"short password", func(r *portal.Registration) { r.Password = "abc" }},
		{"missing username", func(r *portal.Registration) { r.Username = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := valid
			tt.mutate(&reg)
			assert.Error(t, reg.Validate())
		})
	}
}

func TestRegistrationOptionalFields(t *testing.T) {
	reg := portal.Registration{Username: "alice", Password: "hunter22"}
	assert.NoError(t, reg.Validate(), "email and phone are optional")
}

func TestReviewDecisionValidate(t *testing.T) {
	assert.NoError(t, portal.ReviewDecision{Status: portal.RequestApproved}.Validate())
	assert.NoError(t, portal.ReviewDecision{Status: portal.RequestRejected, Comment: "no license"}.Validate())
	assert.Error(t, portal.ReviewDecision{}.Validate())
	assert.Error(t, portal.ReviewDecision{Status: portal.RequestPending}.Validate())
	assert.Error(t, portal.ReviewDecision{Status: "bogus"}.Validate())
}
