package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

const testSecret = "test-secret-key"

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:    uuid.New(),
		Name:  "Jane Smith",
		Email: "jane.smith@company.com",
		Role:  models.RoleManager,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	employee := testEmployee()

	token, err := GenerateToken(employee, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	subject, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if subject != employee.ID {
		t.Errorf("subject = %s, want %s", subject, employee.ID)
	}
}

func TestValidateTokenBearerPrefix(t *testing.T) {
	employee := testEmployee()
	token, err := GenerateToken(employee, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	subject, err := ValidateToken("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if subject != employee.ID {
		t.Errorf("subject = %s, want %s", subject, employee.ID)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	employee := testEmployee()
	token, err := GenerateToken(employee, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = ValidateToken(token, testSecret)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	employee := testEmployee()
	token, err := GenerateToken(employee, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = ValidateToken(token, "another-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not-a-jwt", ErrInvalidToken},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.e30", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, testSecret)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateToken(%q) error = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"empty header", "", ""},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc.def.ghi", ""},
		{"extra parts", "Bearer a b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
