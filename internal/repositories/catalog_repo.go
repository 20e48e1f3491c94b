package repositories

import (
	"storefront/internal/models"
)

// CatalogRepository covers the reference-data lookups the product flows
// depend on: discounts, manufacturers and sub-categories.
type CatalogRepository interface {
	FindDiscountByValue(value string) (*models.Discount, error)
	FindOrCreateManufacturer(name string) (*models.Manufacturer, error)
	FindSubCategoryByName(name string) (*models.SubCategory, error)
}
