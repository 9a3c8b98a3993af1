package utils

import (
	"strings"
	"testing"

	"taskhub/domain/dto"
)

func TestValidateStructRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr bool
	}{
		{
			"valid",
			dto.RegisterRequest{Name: "Jane", Email: "jane@company.com", Password: "password123"},
			false,
		},
		{
			"valid with role",
			dto.RegisterRequest{Name: "Jane", Email: "jane@company.com", Password: "password123", Role: "MANAGER"},
			false,
		},
		{
			"missing name",
			dto.RegisterRequest{Email: "jane@company.com", Password: "password123"},
			true,
		},
		{
			"bad email",
			dto.RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "password123"},
			true,
		},
		{
			"short password",
			dto.RegisterRequest{Name: "Jane", Email: "jane@company.com", Password: "12345"},
			true,
		},
		{
			"unknown role",
			dto.RegisterRequest{Name: "Jane", Email: "jane@company.com", Password: "password123", Role: "ROOT"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(dto.LoginRequest{Email: "bad", Password: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := GetValidationErrors(err)
	if !strings.Contains(msg, "Email must be a valid email address") {
		t.Errorf("message missing email error: %q", msg)
	}
	if !strings.Contains(msg, "Password is required") {
		t.Errorf("message missing password error: %q", msg)
	}
}
