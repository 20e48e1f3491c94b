package repositories

import (
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// CreateWithSupplier and Delete are transactional: the product row and
// its supplier link are written or removed together.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetAllWithDiscount() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	FindAll(filter models.ProductFilter) ([]models.Product, error)
	CreateWithSupplier(product *models.Product, supplierID string) error
	Update(product *models.Product) error
	SaveAverageRating(productID string, average decimal.Decimal) error
	Delete(id string) error
}
