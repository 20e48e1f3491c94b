package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Manufacturer").
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Preload("Discount").
		Preload("Images")
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.withAssociations(r.db).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetAllWithDiscount retrieves every product whose discount is not the
// "0" sentinel.
func (r *GORMProductRepository) GetAllWithDiscount() ([]models.Product, error) {
	var products []models.Product
	err := r.withAssociations(r.db).
		Joins("JOIN discounts ON discounts.id = products.discount_id").
		Where("discounts.value <> ?", "0").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get discounted products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.withAssociations(r.db).First(&product, "products.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindAll executes the composed filter scopes with pagination.
func (r *GORMProductRepository) FindAll(filter models.ProductFilter) ([]models.Product, error) {
	var products []models.Product
	err := r.withAssociations(r.db).
		Model(&models.Product{}).
		Scopes(FilterScopes(filter)...).
		Scopes(Paginate(filter.Page, filter.Size)).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}

// CreateWithSupplier creates the product, its images and its supplier
// link inside a single transaction so a failed link never leaves a
// supplier-less product behind.
func (r *GORMProductRepository) CreateWithSupplier(product *models.Product, supplierID string) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		link := models.SupplierLink{ProductID: product.ID, SupplierID: supplierID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound when nothing matched,
		// so we check RowsAffected.
		return fmt.Errorf("product %s: %w", product.ID, apperrors.ErrProductNotFound)
	}
	return nil
}

// SaveAverageRating persists only the recomputed average onto the
// product row. Concurrent writers are last-writer-wins.
func (r *GORMProductRepository) SaveAverageRating(productID string, average decimal.Decimal) error {
	err := r.db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("average_rating", average).Error
	if err != nil {
		return fmt.Errorf("failed to save average rating for product %s: %w", productID, err)
	}
	return nil
}

// Delete removes the supplier link and the product row together. A
// missing link is reported so the caller sees the inconsistency.
func (r *GORMProductRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var link models.SupplierLink
		if err := tx.First(&link, "product_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", id, apperrors.ErrSupplierLinkNotFound)
			}
			return err
		}
		if err := tx.Delete(&link).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", id, apperrors.ErrProductNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
