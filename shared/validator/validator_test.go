package validator_test

import (
	"strings"
	"testing"

	"lexdesk/shared/validator"
)

type registerPayload struct {
	Username string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required,intlphone" json:"phone"`
	Age      int    `validate:"gte=18,lte=120" json:"age"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *registerPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &registerPayload{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Phone:    "+14155551234",
				Age:      25,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &registerPayload{
				Email: "jdoe@example.com",
				Phone: "+14155551234",
				Age:   25,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &registerPayload{
				Username: "jdoe",
				Email:    "not-an-email",
				Phone:    "+14155551234",
				Age:      25,
			},
			expectError: true,
		},
		{
			name: "underage",
			data: &registerPayload{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Phone:    "+14155551234",
				Age:      17,
			},
			expectError: true,
		},
		{
			name: "invalid phone",
			data: &registerPayload{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Phone:    "abc123",
				Age:      25,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "E164 with plus", phone: "+14155551234", valid: true},
		{name: "digits only", phone: "14155551234", valid: true},
		{name: "long country prefix", phone: "+4915123456789", valid: true},
		{name: "minimum length", phone: "1234567", valid: true},
		{name: "letters", phone: "abc123", valid: false},
		{name: "empty", phone: "", valid: false},
		{name: "plus only", phone: "+", valid: false},
		{name: "too short", phone: "+1234", valid: false},
		{name: "too long", phone: "+12345678901234567890", valid: false},
		{name: "spaces", phone: "+1 415 555 1234", valid: false},
		{name: "dashes", phone: "415-555-1234", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsValidPhone(tt.phone); got != tt.valid {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.valid)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid phone var",
			field:       "+4915123456789",
			tag:         "intlphone",
			expectError: false,
		},
		{
			name:        "invalid phone var",
			field:       "call-me-maybe",
			tag:         "intlphone",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"username":"jdoe","email":"jdoe@example.com","phone":"+14155551234","age":25}`,
			expectError: false,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"username":"jdoe","email":"invalid","phone":"+14155551234","age":25}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"username":"jdoe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data registerPayload
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &registerPayload{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
