package repositories

import (
	"storefront/internal/models"
)

// RatingRepository defines the interface for rating data access.
type RatingRepository interface {
	Create(rating *models.Rating) error
	FindAllByProduct(productID string) ([]models.Rating, error)
}
