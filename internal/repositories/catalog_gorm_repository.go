package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// FindDiscountByValue looks up a discount row by its textual value.
// Returns gorm.ErrRecordNotFound (wrapped) on a miss; the service
// translates that into its invalid-discount error.
func (r *GORMCatalogRepository) FindDiscountByValue(value string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, "value = ?", value).Error; err != nil {
		return nil, fmt.Errorf("discount %q: %w", value, err)
	}
	return &discount, nil
}

// FindOrCreateManufacturer looks a manufacturer up by name and creates
// it when missing. Unknown manufacturers self-heal; sub-categories do
// not. That asymmetry is a business rule, not an oversight.
func (r *GORMCatalogRepository) FindOrCreateManufacturer(name string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.First(&manufacturer, "name = ?", name).Error
	if err == nil {
		return &manufacturer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up manufacturer %q: %w", name, err)
	}
	manufacturer = models.Manufacturer{Name: name}
	if err := r.db.Create(&manufacturer).Error; err != nil {
		return nil, fmt.Errorf("failed to create manufacturer %q: %w", name, err)
	}
	return &manufacturer, nil
}

// FindSubCategoryByName looks up a sub-category with its parent
// category preloaded.
func (r *GORMCatalogRepository) FindSubCategoryByName(name string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.Preload("Category").First(&subCategory, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("sub-category %q: %w", name, err)
	}
	return &subCategory, nil
}
