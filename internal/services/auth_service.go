package services

import (
	"errors"
	"fmt"

	"pegawai/internal/models"
	"pegawai/internal/repositories"
	"pegawai/pkg/hasher"
)

// AuthService handles business logic for accounts: signup and login.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Signup registers a new user, hashes their password, and saves them to the
// database. On success user holds the stored record, password replaced by its
// digest.
func (s *AuthService) Signup(user *models.User) error {
	if user.Username == "" || user.Email == "" {
		return fmt.Errorf("username and email are required: %w", ErrValidation)
	}

	// Combined existence check: any user holding either value is a conflict.
	if existing, err := s.userRepo.GetByUsernameOrEmail(user.Username, user.Email); err == nil && existing != nil {
		return fmt.Errorf("username %q or email %q: %w", user.Username, user.Email, ErrConflict)
	}

	hashed, err := hasher.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent signup can pass the lookup above and still lose the
		// insert to the unique index. Report it as the same conflict.
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("username %q or email %q: %w", user.Username, user.Email, ErrConflict)
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns the stored record. An unknown
// username and a wrong password are reported as distinct failures, matching
// the upstream contract. The returned record includes the password digest;
// that is a known weakness of the contract, preserved here.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	if !hasher.Verify(password, user.Password) {
		return nil, ErrIncorrectPassword
	}
	return user, nil
}
