package models

import "time"

// ProductRequest is the payload for registering or updating a product.
// Numeric fields are pointers so that an absent field can be told apart
// from an explicit zero: on update, absent fields keep their prior value.
type ProductRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Color        string   `json:"color"`
	Price        *float64 `json:"price"`
	Model        string   `json:"model"`
	Weight       *float64 `json:"weight"`
	Height       *float64 `json:"height"`
	Length       *float64 `json:"length"`
	Width        *float64 `json:"width"`
	Manufacturer string   `json:"manufacturer"`
	Supplier     string   `json:"supplier"`
	SubCategory  string   `json:"sub_category"`
	MainImage    string   `json:"main_image"`
	Images       []string `json:"images"`
	Discount     string   `json:"discount"`
}

// ProductFilter carries the optional catalog filter criteria. Every
// field is optional; absent fields add no predicate at all.
type ProductFilter struct {
	Name         string   `query:"name"`
	Category     string   `query:"category"`
	SubCategory  string   `query:"sub_category"`
	Manufacturer string   `query:"manufacturer"`
	MinPrice     *float64 `query:"min_price"`
	MaxPrice     *float64 `query:"max_price"`
	Rating       *float64 `query:"rating"`
	Page         int      `query:"page"`
	Size         int      `query:"size"`
}

// RatingRequest is the payload for rating a product.
type RatingRequest struct {
	Value *float64 `json:"value"`
}

// EmployeeRequest is the payload for updating an employee record.
// Absent fields keep their prior value. A new CPF must not belong to
// another employee.
type EmployeeRequest struct {
	Name      string     `json:"name" validate:"omitempty,min=2,max=100"`
	BirthDate *time.Time `json:"birth_date"`
	HireDate  *time.Time `json:"hire_date"`
	Phone     string     `json:"phone" validate:"omitempty,max=20"`
	CPF       string     `json:"cpf" validate:"omitempty,min=11,max=14"`
}

// EmployeeFilter filters the employee listing by name.
type EmployeeFilter struct {
	Name string `query:"name"`
	Page int    `query:"page"`
	Size int    `query:"size"`
}

// SituationRequest toggles the situation of the listed employees.
type SituationRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}
