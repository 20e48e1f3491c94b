package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee situation values. Deleting an employee only flips the
// situation to inactive; rows are never removed.
const (
	SituationActive   = "ACTIVE"
	SituationInactive = "INACTIVE"
)

// Employee represents a store employee record.
type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	BirthDate  time.Time `json:"birth_date"`
	HireDate   time.Time `json:"hire_date"`
	Phone      string    `json:"phone" gorm:"type:varchar(20)"`
	CPF        string    `json:"cpf" gorm:"uniqueIndex;type:varchar(14)"`
	Email      string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Situation  string    `json:"situation" gorm:"type:varchar(10);default:ACTIVE"`
	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
