package repositories

import (
	"storefront/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	GetByName(name string) (*models.Supplier, error)
	GetLinkByProduct(productID string) (*models.SupplierLink, error)
}
