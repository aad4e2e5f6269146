package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/coladapo/puo-memo-platform/models"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     models.RegisterRequest{Email: "john@example.com", Password: "Sup3rSecret", FullName: "John Doe"},
			wantErr: nil,
		},
		{
			name:    "empty email",
			req:     models.RegisterRequest{Password: "Sup3rSecret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			req:     models.RegisterRequest{Email: "not-an-email", Password: "Sup3rSecret"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without dotted domain",
			req:     models.RegisterRequest{Email: "john@localhost", Password: "Sup3rSecret"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Email: "john@example.com", Password: "Ab1"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "no uppercase",
			req:     models.RegisterRequest{Email: "john@example.com", Password: "sup3rsecret"},
			wantErr: ErrPasswordNoUpper,
		},
		{
			name:    "no lowercase",
			req:     models.RegisterRequest{Email: "john@example.com", Password: "SUP3RSECRET"},
			wantErr: ErrPasswordNoLower,
		},
		{
			name:    "no digit",
			req:     models.RegisterRequest{Email: "john@example.com", Password: "SuperSecret"},
			wantErr: ErrPasswordNoDigit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegisterRequest_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	// password intentionally violates policy; only the email field is checked
	req := models.RegisterRequest{Email: "john@example.com", Password: "weak"}
	if err := v.Validate(ctx, req, FieldEmail); err != nil {
		t.Errorf("expected nil for email-only validation, got %v", err)
	}

	if err := v.Validate(ctx, req, "no_such_field"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com", Password: "anything"}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := v.Validate(ctx, models.LoginRequest{Password: "anything"}); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("expected ErrEmptyEmail, got %v", err)
	}
	if err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com"}); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}

	// login must not re-apply the registration password policy
	if err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com", Password: "old"}); err != nil {
		t.Errorf("expected legacy password to pass presence check, got %v", err)
	}
}

func TestValidateCreateAPIKeyRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	days := func(n int) *int { return &n }

	if err := v.Validate(ctx, models.CreateAPIKeyRequest{Name: "CI key", ExpiresInDays: days(30)}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := v.Validate(ctx, models.CreateAPIKeyRequest{ExpiresInDays: days(-1)}); !errors.Is(err, ErrNegativeKeyExpiry) {
		t.Errorf("expected ErrNegativeKeyExpiry, got %v", err)
	}
	// explicit zero is a valid request: it asks for an already-expired key
	if err := v.Validate(ctx, models.CreateAPIKeyRequest{ExpiresInDays: days(0)}); err != nil {
		t.Errorf("expected nil for zero expiry, got %v", err)
	}
	if err := v.Validate(ctx, models.CreateAPIKeyRequest{RateLimitPerMinute: -5}); !errors.Is(err, ErrInvalidRateLimit) {
		t.Errorf("expected ErrInvalidRateLimit, got %v", err)
	}
}

func TestValidateCreateMemoryRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.CreateMemoryRequest{Content: "note"}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := v.Validate(ctx, models.CreateMemoryRequest{Content: "   "}); !errors.Is(err, ErrEmptyMemoryContent) {
		t.Errorf("expected ErrEmptyMemoryContent, got %v", err)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	if err := v.Validate(context.Background(), 42); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
