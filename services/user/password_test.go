package user

import (
	"errors"
	"testing"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "sunshine42", false},
		{"too short", "ab1", true},
		{"digits only", "12345678", true},
		{"letters only", "abcdefgh", true},
		{"exactly eight with both", "abcdefg1", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := VerifyPasswordComplexity(c.password)
			if (err != nil) != c.wantErr {
				t.Errorf("VerifyPasswordComplexity(%q) error = %v, wantErr %v", c.password, err, c.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

// A mismatched confirmation must be rejected before any repository access;
// the service has no repositories here, so touching one would panic.
func TestResetPasswordMismatchDoesNotMutate(t *testing.T) {
	svc := &DefaultUserService{}
	err := svc.ResetPassword("some-token", "sunshine42", "sunshine43")
	if err == nil {
		t.Fatal("expected error for mismatched confirmation")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := hashPassword("sunshine42")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if hash == "sunshine42" || hash == "" {
		t.Fatalf("hash looks wrong: %q", hash)
	}
}
