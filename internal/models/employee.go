package models

import "gorm.io/gorm"

// Employee represents a single employee record.
// All five attributes are mandatory at creation time. Salary carries the
// plain `required` tag, which treats 0 as missing; a zero salary is rejected
// on create and ignored on update, matching the upstream behavior.
type Employee struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName  string  `json:"first_name" gorm:"type:varchar(100)" validate:"required"`
	LastName   string  `json:"last_name" gorm:"type:varchar(100)" validate:"required"`
	Email      string  `json:"email" gorm:"type:varchar(255)" validate:"required"`
	Gender     string  `json:"gender" gorm:"type:varchar(50)" validate:"required"`
	Salary     float64 `json:"salary" validate:"required"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
