package repositories

import "pegawai/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	// GetByUsernameOrEmail looks up a user matching either value in a single
	// query. Used by signup for its combined existence check.
	GetByUsernameOrEmail(username, email string) (*models.User, error)
}
