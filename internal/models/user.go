package models

import "gorm.io/gorm"

// User represents an account that can sign up and log in.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	// Password holds the bcrypt digest once the account is stored. The upstream
	// contract returns the full record, digest included, so the field keeps its
	// json tag.
	Password   string `json:"password" gorm:"type:varchar(255)" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
