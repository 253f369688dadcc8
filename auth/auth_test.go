package auth

import (
	"context"
	"errors"
	"testing"

	"restaurant-site/models"
)

type staticAdmins []models.AdminUser

func (s staticAdmins) Admins(context.Context) ([]models.AdminUser, error) { return s, nil }

type failingAdmins struct{}

func (failingAdmins) Admins(context.Context) ([]models.AdminUser, error) {
	return nil, errors.New("store offline")
}

func TestVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := NewPasswordVerifier(staticAdmins{
		{ID: "1", Username: "admin", PasswordHash: hash, Role: models.RoleSuper},
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "admin", "s3cret", nil},
		{"wrong password", "admin", "nope", ErrInvalidCredentials},
		{"unknown user", "ghost", "s3cret", ErrInvalidCredentials},
		{"empty", "", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Verify(context.Background(), tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Username != "admin" {
				t.Fatalf("got %+v", got)
			}
		})
	}
}

func TestVerifyErrorMessageIsGeneric(t *testing.T) {
	if ErrInvalidCredentials.Error() != "Invalid username or password" {
		t.Fatalf("message = %q", ErrInvalidCredentials.Error())
	}
}

func TestVerifySourceError(t *testing.T) {
	_, err := NewPasswordVerifier(failingAdmins{}).Verify(context.Background(), "admin", "admin")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Fatal("expected distinct hashes for the same password")
	}
	if !CheckPassword(a, "same") || !CheckPassword(b, "same") {
		t.Fatal("hashes do not verify")
	}
}

func TestVerifyComparesForUnknownUsers(t *testing.T) {
	hash, _ := HashPassword("s3cret")
	v := NewPasswordVerifier(staticAdmins{{ID: "1", Username: "admin", PasswordHash: hash, Role: models.RoleSuper}})

	calls := 0
	orig := checkPassword
	checkPassword = func(h, p string) bool {
		calls++
		return orig(h, p)
	}
	t.Cleanup(func() { checkPassword = orig })

	for _, username := range []string{"admin", "ghost"} {
		calls = 0
		if _, err := v.Verify(context.Background(), username, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: err = %v", username, err)
		}
		if calls != 1 {
			t.Fatalf("%s: %d bcrypt comparisons, want 1", username, calls)
		}
	}
}
