package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// Create creates a new supplier in the database.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// GetByName retrieves a supplier by its name.
func (r *GORMSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier %q: %w", name, apperrors.ErrSupplierNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier by name %q: %w", name, err)
	}
	return &supplier, nil
}

// GetLinkByProduct retrieves the supplier link for a product with the
// supplier preloaded. A missing link surfaces as ErrSupplierLinkNotFound;
// response assembly treats that as "N/A", not as a failure.
func (r *GORMSupplierRepository) GetLinkByProduct(productID string) (*models.SupplierLink, error) {
	var link models.SupplierLink
	if err := r.db.Preload("Supplier").First(&link, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrSupplierLinkNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier link for product %s: %w", productID, err)
	}
	return &link, nil
}
