package services

import (
	"errors"
	"testing"

	"github.com/annavey/moodwell/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubUserStore struct {
	users  []models.User
	nextID uint
}

func (stub *stubUserStore) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserStore) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubUserStore) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubUserStore) Create(user *models.User) error {
	stub.nextID++
	user.ID = stub.nextID
	stub.users = append(stub.users, *user)
	return nil
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  error
	}{
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "longenough",
			userName: "Pat",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "short password",
			email:    "pat@example.com",
			password: "short",
			userName: "Pat",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "blank name",
			email:    "pat@example.com",
			password: "longenough",
			userName: "   ",
			wantErr:  ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(&stubUserStore{})
			_, err := service.RegisterUser(tt.email, tt.password, tt.userName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RegisterUser() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterUserHashesPasswordAndNormalizesEmail(t *testing.T) {
	store := &stubUserStore{}
	service := NewAuthService(store)

	user, err := service.RegisterUser("  Pat@Example.COM ", "password123", " Pat ")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if user.Email != "pat@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", user.Email)
	}
	if user.Name != "Pat" {
		t.Fatalf("name = %q, want trimmed", user.Name)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")) != nil {
		t.Fatal("stored hash does not verify the original password")
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	store := &stubUserStore{}
	service := NewAuthService(store)

	if _, err := service.RegisterUser("pat@example.com", "password123", "Pat"); err != nil {
		t.Fatalf("first RegisterUser() error = %v", err)
	}
	_, err := service.RegisterUser("PAT@example.com", "password123", "Pat Again")
	if !errors.Is(err, ErrEmailAlreadyInUse) {
		t.Fatalf("second RegisterUser() error = %v, want ErrEmailAlreadyInUse", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := &stubUserStore{}
	service := NewAuthService(store)
	if _, err := service.RegisterUser("pat@example.com", "password123", "Pat"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	user, err := service.Authenticate("pat@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.Email != "pat@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := service.Authenticate("pat@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	// Unknown accounts produce the same signal as bad passwords.
	if _, err := service.Authenticate("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}
