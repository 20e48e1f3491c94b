package models

import "gorm.io/gorm"

// Supplier is a company that supplies products to the store.
type Supplier struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Phone      string `json:"phone" gorm:"type:varchar(20)"`
	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// SupplierLink associates a product with the supplier it was sourced
// from. A product has at most one active link; a missing link is
// rendered as "N/A" in responses, never as an error.
type SupplierLink struct {
	ID         uint     `json:"id" gorm:"primarykey"`
	ProductID  string   `json:"product_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	SupplierID string   `json:"supplier_id" gorm:"type:varchar(36);index;not null"`
	Supplier   Supplier `json:"supplier"`
}
