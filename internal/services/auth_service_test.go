package services_test

import (
	"testing"

	"pegawai/internal/models"
	"pegawai/internal/repositories"
	"pegawai/internal/services"
	"pegawai/pkg/hasher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(username, email string) (*models.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	// Test successful signup
	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}
	mockRepo.On("GetByUsernameOrEmail", user.Username, user.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.Signup(user)
	assert.NoError(t, err)
	// The stored password must be a verifiable digest, never the plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, hasher.Verify("password123", user.Password))
	mockRepo.AssertExpectations(t)

	// Test missing username
	err = authService.Signup(&models.User{Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Test missing email
	err = authService.Signup(&models.User{Username: "someone", Password: "x"})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Test username or email already taken
	taken := &models.User{Username: "testuser", Email: "other@example.com", Password: "password123"}
	mockRepo.On("GetByUsernameOrEmail", taken.Username, taken.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.Signup(taken)
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)

	// Test losing the insert race: the lookup sees nothing but the unique
	// index rejects the create.
	racer := &models.User{Username: "racer", Email: "racer@example.com", Password: "password123"}
	mockRepo.On("GetByUsernameOrEmail", racer.Username, racer.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate).Once()
	err = authService.Signup(racer)
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	digest, _ := hasher.Hash("password123")
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: digest,
	}

	// Test successful login: the full stored record comes back, digest included.
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	got, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, digest, got.Password)
	mockRepo.AssertExpectations(t)

	// Test wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrIncorrectPassword)
	mockRepo.AssertExpectations(t)

	// Test unknown username: reported as not found, not as bad credentials.
	mockRepo.On("GetByUsername", "nonexistentuser").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("nonexistentuser", "password123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
