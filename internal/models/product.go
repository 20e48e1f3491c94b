package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog product. Price holds the effective
// (already discounted) price; the undiscounted reference price is
// recovered from it when a discount is active.
type Product struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string          `json:"name" gorm:"type:varchar(100)" validate:"required,min=5,max=100"`
	Description    string          `json:"description" gorm:"type:varchar(1024)" validate:"required,min=5,max=1024"`
	Color          string          `json:"color" gorm:"type:varchar(30)" validate:"required,min=2,max=30"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(16,2);not null"`
	Model          string          `json:"model" gorm:"type:varchar(30)" validate:"required,min=2,max=30"`
	Weight         float64         `json:"weight" validate:"gte=0,lte=1000"`
	Height         float64         `json:"height" validate:"gte=0,lte=500"`
	Length         float64         `json:"length" validate:"gte=0,lte=500"`
	Width          float64         `json:"width" validate:"gte=0,lte=500"`
	ManufacturerID uint            `json:"-"`
	Manufacturer   Manufacturer    `json:"manufacturer"`
	SubCategoryID  uint            `json:"-"`
	SubCategory    SubCategory     `json:"sub_category"`
	MainImage      string          `json:"main_image" gorm:"type:varchar(512)"`
	Images         []ProductImage  `json:"images"`
	DiscountID     uint            `json:"-"`
	Discount       Discount        `json:"discount"`
	AverageRating  decimal.Decimal `json:"average_rating" gorm:"type:decimal(3,1)"`
	// Timestamps are spelled out: embedding gorm.Model would collide
	// with the Model field above.
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductImage is a secondary image URL attached to a product.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	ProductID string `json:"-" gorm:"type:varchar(36);index"`
	URL       string `json:"url" gorm:"type:varchar(512)"`
}

// Discount is a percentage stored as text, uniquely keyed by its value.
// The row with value "0" is the canonical "no discount" marker: it is
// seeded at startup and never deleted.
type Discount struct {
	ID    uint   `json:"-" gorm:"primarykey"`
	Value string `json:"value" gorm:"uniqueIndex;type:varchar(3);not null"`
}

// Category groups sub-categories.
type Category struct {
	ID   uint   `json:"-" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(30);not null"`
}

// SubCategory is the reference a product points at; its parent Category
// supplies the category name in responses.
type SubCategory struct {
	ID         uint     `json:"-" gorm:"primarykey"`
	Name       string   `json:"name" gorm:"uniqueIndex;type:varchar(30);not null"`
	CategoryID uint     `json:"-"`
	Category   Category `json:"category"`
}

// Manufacturer is looked up by name and auto-created when missing.
type Manufacturer struct {
	ID   uint   `json:"-" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(50);not null"`
}

// Rating is a single submitted rating for a product, already rounded to
// the nearest half point before storage.
type Rating struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36);index;not null"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(2,1);not null"`
}
