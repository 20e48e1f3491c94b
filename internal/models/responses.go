package models

import "time"

// ProductResponse is the fully assembled product view: effective price,
// recovered original price, aggregated rating and supplier name.
type ProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Color         string   `json:"color"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Model         string   `json:"model"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	Length        float64  `json:"length"`
	Width         float64  `json:"width"`
	Manufacturer  string   `json:"manufacturer"`
	Supplier      string   `json:"supplier"`
	Category      string   `json:"category"`
	SubCategory   string   `json:"sub_category"`
	MainImage     string   `json:"main_image"`
	Images        []string `json:"images"`
	Discount      string   `json:"discount"`
	AverageRating float64  `json:"average_rating"`
	RatingCount   int      `json:"rating_count"`
}

// EmployeeResponse is the client-facing view of an employee record.
type EmployeeResponse struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	HireDate  time.Time `json:"hire_date"`
	Phone     string    `json:"phone"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Situation string    `json:"situation"`
}
