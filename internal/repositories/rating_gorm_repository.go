package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Create stores a new rating.
func (r *GORMRatingRepository) Create(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// FindAllByProduct returns every rating submitted for a product.
func (r *GORMRatingRepository) FindAllByProduct(productID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Find(&ratings, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to get ratings for product %s: %w", productID, err)
	}
	return ratings, nil
}
