package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllWithDiscount() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) CreateWithSupplier(product *models.Product, supplierID string) error {
	args := m.Called(product, supplierID)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveAverageRating(productID string, average decimal.Decimal) error {
	args := m.Called(productID, average)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of repositories.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindDiscountByValue(value string) (*models.Discount, error) {
	args := m.Called(value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

func (m *MockCatalogRepository) FindOrCreateManufacturer(name string) (*models.Manufacturer, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockCatalogRepository) FindSubCategoryByName(name string) (*models.SubCategory, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubCategory), args.Error(1)
}

// MockRatingRepository is a mock implementation of repositories.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindAllByProduct(productID string) ([]models.Rating, error) {
	args := m.Called(productID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

// MockSupplierRepository is a mock implementation of repositories.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetLinkByProduct(productID string) (*models.SupplierLink, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplierLink), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

type productServiceMocks struct {
	products  *MockProductRepository
	catalog   *MockCatalogRepository
	ratings   *MockRatingRepository
	suppliers *MockSupplierRepository
	publisher *MockEventPublisher
}

func newTestProductService() (*services.ProductService, *productServiceMocks) {
	m := &productServiceMocks{
		products:  new(MockProductRepository),
		catalog:   new(MockCatalogRepository),
		ratings:   new(MockRatingRepository),
		suppliers: new(MockSupplierRepository),
		publisher: new(MockEventPublisher),
	}
	service := services.NewProductService(m.products, m.catalog, m.ratings, m.suppliers, m.publisher)
	return service, m
}

func f64(v float64) *float64 {
	return &v
}

func validProductRequest() *models.ProductRequest {
	return &models.ProductRequest{
		Name:         "Aurora 15 Laptop",
		Description:  "High performance 15-inch laptop.",
		Color:        "Silver",
		Price:        f64(100.0),
		Model:        "AUR-15",
		Weight:       f64(1.8),
		Height:       f64(2.0),
		Length:       f64(35.5),
		Width:        f64(24.0),
		Manufacturer: "Aurora Computing",
		Supplier:     "Acme Distribution",
		SubCategory:  "Laptops",
		MainImage:    "https://images.example/aurora-15/main.jpg",
		Images:       []string{"https://images.example/aurora-15/side.jpg"},
		Discount:     "10",
	}
}

// storedProduct returns a persisted product as the repository would
// hand it back: price 90.00 under a 10% discount, so the undiscounted
// reference price is 100.00.
func storedProduct() *models.Product {
	return &models.Product{
		ID:             "prod-1",
		Name:           "Aurora 15 Laptop",
		Description:    "High performance 15-inch laptop.",
		Color:          "Silver",
		Price:          decimal.RequireFromString("90.00"),
		Model:          "AUR-15",
		Weight:         1.8,
		Height:         2.0,
		Length:         35.5,
		Width:          24.0,
		ManufacturerID: 1,
		Manufacturer:   models.Manufacturer{ID: 1, Name: "Aurora Computing"},
		SubCategoryID:  2,
		SubCategory:    models.SubCategory{ID: 2, Name: "Laptops", CategoryID: 3, Category: models.Category{ID: 3, Name: "Electronics"}},
		MainImage:      "https://images.example/aurora-15/main.jpg",
		Images:         []models.ProductImage{{ID: 1, ProductID: "prod-1", URL: "https://images.example/aurora-15/side.jpg"}},
		DiscountID:     11,
		Discount:       models.Discount{ID: 11, Value: "10"},
	}
}

func TestProductService_RegisterProduct(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()

	m.catalog.On("FindDiscountByValue", "10").Return(&models.Discount{ID: 11, Value: "10"}, nil).Once()
	m.catalog.On("FindOrCreateManufacturer", "Aurora Computing").Return(&models.Manufacturer{ID: 1, Name: "Aurora Computing"}, nil).Once()
	m.catalog.On("FindSubCategoryByName", "Laptops").Return(&models.SubCategory{ID: 2, Name: "Laptops", Category: models.Category{ID: 3, Name: "Electronics"}}, nil).Once()
	m.suppliers.On("GetByName", "Acme Distribution").Return(&models.Supplier{ID: "sup-1", Name: "Acme Distribution"}, nil).Once()
	m.products.On("CreateWithSupplier", mock.AnythingOfType("*models.Product"), "sup-1").Return(nil).Once()
	m.publisher.On("PublishProductEvent", "product.registered", mock.Anything).Return(nil).Once()

	product, err := service.RegisterProduct(req)

	assert.NoError(t, err)
	// The stored price is the input price with the discount applied.
	assert.Equal(t, "90.00", product.Price.StringFixed(2))
	assert.Equal(t, uint(11), product.DiscountID)
	assert.Len(t, product.Images, 1)
	m.products.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
	m.suppliers.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestProductService_RegisterProduct_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *models.ProductRequest)
		wantField apperrors.FieldCode
	}{
		{"blank name", func(r *models.ProductRequest) { r.Name = "   " }, apperrors.FieldName},
		{"name too short", func(r *models.ProductRequest) { r.Name = "Abcd" }, apperrors.FieldName},
		{"name too long", func(r *models.ProductRequest) { r.Name = strings.Repeat("x", 101) }, apperrors.FieldName},
		{"blank description", func(r *models.ProductRequest) { r.Description = "" }, apperrors.FieldDescription},
		{"color too short", func(r *models.ProductRequest) { r.Color = "S" }, apperrors.FieldColor},
		{"missing price", func(r *models.ProductRequest) { r.Price = nil }, apperrors.FieldPrice},
		{"negative price", func(r *models.ProductRequest) { r.Price = f64(-1.0) }, apperrors.FieldPrice},
		{"price too large", func(r *models.ProductRequest) { r.Price = f64(100000000.00) }, apperrors.FieldPrice},
		{"missing weight", func(r *models.ProductRequest) { r.Weight = nil }, apperrors.FieldWeight},
		{"height too large", func(r *models.ProductRequest) { r.Height = f64(501) }, apperrors.FieldHeight},
		{"blank manufacturer", func(r *models.ProductRequest) { r.Manufacturer = "" }, apperrors.FieldManufacturer},
		{"blank supplier", func(r *models.ProductRequest) { r.Supplier = "" }, apperrors.FieldGlobal},
		{"blank sub-category", func(r *models.ProductRequest) { r.SubCategory = "" }, apperrors.FieldSubCategory},
		{"blank main image", func(r *models.ProductRequest) { r.MainImage = "" }, apperrors.FieldMainImage},
		{"no secondary images", func(r *models.ProductRequest) { r.Images = nil }, apperrors.FieldImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestProductService()
			req := validProductRequest()
			tt.mutate(req)

			product, err := service.RegisterProduct(req)

			assert.Nil(t, product)
			var fieldErr *apperrors.FieldError
			assert.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			// Validation fails before any repository is touched.
			m.products.AssertNotCalled(t, "CreateWithSupplier", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_RegisterProduct_MinimumNameLengthAccepted(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()
	req.Name = "Abcde" // exactly at the lower bound

	m.catalog.On("FindDiscountByValue", "10").Return(&models.Discount{ID: 11, Value: "10"}, nil).Once()
	m.catalog.On("FindOrCreateManufacturer", "Aurora Computing").Return(&models.Manufacturer{ID: 1, Name: "Aurora Computing"}, nil).Once()
	m.catalog.On("FindSubCategoryByName", "Laptops").Return(&models.SubCategory{ID: 2, Name: "Laptops"}, nil).Once()
	m.suppliers.On("GetByName", "Acme Distribution").Return(&models.Supplier{ID: "sup-1", Name: "Acme Distribution"}, nil).Once()
	m.products.On("CreateWithSupplier", mock.AnythingOfType("*models.Product"), "sup-1").Return(nil).Once()
	m.publisher.On("PublishProductEvent", "product.registered", mock.Anything).Return(nil).Once()

	_, err := service.RegisterProduct(req)

	assert.NoError(t, err)
	m.products.AssertExpectations(t)
}

func TestProductService_RegisterProduct_UnknownDiscount(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()
	req.Discount = "15"

	m.catalog.On("FindDiscountByValue", "15").Return(nil, gorm.ErrRecordNotFound).Once()

	product, err := service.RegisterProduct(req)

	assert.Nil(t, product)
	var discountErr *apperrors.InvalidDiscountError
	assert.ErrorAs(t, err, &discountErr)
	m.products.AssertNotCalled(t, "CreateWithSupplier", mock.Anything, mock.Anything)
}

func TestProductService_RegisterProduct_BlankDiscountResolvesToSentinel(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()
	req.Discount = ""

	m.catalog.On("FindDiscountByValue", "0").Return(&models.Discount{ID: 1, Value: "0"}, nil).Once()
	m.catalog.On("FindOrCreateManufacturer", "Aurora Computing").Return(&models.Manufacturer{ID: 1, Name: "Aurora Computing"}, nil).Once()
	m.catalog.On("FindSubCategoryByName", "Laptops").Return(&models.SubCategory{ID: 2, Name: "Laptops"}, nil).Once()
	m.suppliers.On("GetByName", "Acme Distribution").Return(&models.Supplier{ID: "sup-1", Name: "Acme Distribution"}, nil).Once()
	m.products.On("CreateWithSupplier", mock.AnythingOfType("*models.Product"), "sup-1").Return(nil).Once()
	m.publisher.On("PublishProductEvent", "product.registered", mock.Anything).Return(nil).Once()

	product, err := service.RegisterProduct(req)

	assert.NoError(t, err)
	// No discount: the stored price equals the input price.
	assert.Equal(t, "100.00", product.Price.StringFixed(2))
	assert.Equal(t, "0", product.Discount.Value)
	m.catalog.AssertExpectations(t)
}

func TestProductService_RegisterProduct_UnknownSupplier(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()

	m.catalog.On("FindDiscountByValue", "10").Return(&models.Discount{ID: 11, Value: "10"}, nil).Once()
	m.catalog.On("FindOrCreateManufacturer", "Aurora Computing").Return(&models.Manufacturer{ID: 1, Name: "Aurora Computing"}, nil).Once()
	m.catalog.On("FindSubCategoryByName", "Laptops").Return(&models.SubCategory{ID: 2, Name: "Laptops"}, nil).Once()
	m.suppliers.On("GetByName", "Acme Distribution").Return(nil, apperrors.ErrSupplierNotFound).Once()

	product, err := service.RegisterProduct(req)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrSupplierNotFound)
	// The supplier is resolved before anything is written.
	m.products.AssertNotCalled(t, "CreateWithSupplier", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_ChangedDiscountRecomputesPrice(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.catalog.On("FindDiscountByValue", "25").Return(&models.Discount{ID: 26, Value: "25"}, nil).Once()
	m.products.On("Update", product).Return(nil).Once()

	// Only the discount changes: 90.00 under 10% recovers to 100.00,
	// then 25% lands on 75.00.
	err := service.UpdateProduct("prod-1", &models.ProductRequest{Discount: "25"})

	assert.NoError(t, err)
	assert.Equal(t, "75.00", product.Price.StringFixed(2))
	assert.Equal(t, uint(26), product.DiscountID)
	m.products.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
}

func TestProductService_UpdateProduct_RepeatedPriceInputDoesNotDrift(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.products.On("Update", product).Return(nil).Once()

	// Re-submitting the current discounted price must not compound the
	// discount: 90.00 recovers to 100.00 and 10% re-applies to 90.00.
	err := service.UpdateProduct("prod-1", &models.ProductRequest{Price: f64(90.0)})

	assert.NoError(t, err)
	assert.Equal(t, "90.00", product.Price.StringFixed(2))
	assert.Equal(t, uint(11), product.DiscountID)
	m.products.AssertExpectations(t)
}

func TestProductService_UpdateProduct_PartialFieldsKeepPriorValues(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.products.On("Update", product).Return(nil).Once()

	err := service.UpdateProduct("prod-1", &models.ProductRequest{Color: "Space Gray"})

	assert.NoError(t, err)
	assert.Equal(t, "Space Gray", product.Color)
	assert.Equal(t, "Aurora 15 Laptop", product.Name)
	assert.Equal(t, "AUR-15", product.Model)
	assert.Equal(t, "90.00", product.Price.StringFixed(2))
	m.products.AssertExpectations(t)
}

func TestProductService_UpdateProduct_InvalidMergedStateRejected(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()

	err := service.UpdateProduct("prod-1", &models.ProductRequest{Name: "Abcd"})

	var fieldErr *apperrors.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, apperrors.FieldName, fieldErr.Field)
	m.products.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	service, m := newTestProductService()

	m.products.On("GetByID", "missing").Return(nil, apperrors.ErrProductNotFound).Once()

	err := service.UpdateProduct("missing", &models.ProductRequest{Color: "Red"})

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	m.products.AssertExpectations(t)
}

func TestProductService_RemoveDiscount(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.catalog.On("FindDiscountByValue", "0").Return(&models.Discount{ID: 1, Value: "0"}, nil).Once()
	m.products.On("Update", product).Return(nil).Once()

	err := service.RemoveDiscount("prod-1")

	assert.NoError(t, err)
	// The stored price reverts to the undiscounted reference price.
	assert.Equal(t, "100.00", product.Price.StringFixed(2))
	assert.Equal(t, "0", product.Discount.Value)
	m.products.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
}

func TestProductService_RateProduct(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	var created *models.Rating
	m.ratings.On("Create", mock.AnythingOfType("*models.Rating")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Rating)
	}).Return(nil).Once()
	m.ratings.On("FindAllByProduct", "prod-1").Return([]models.Rating{
		{ProductID: "prod-1", Value: decimal.RequireFromString("4.5")},
		{ProductID: "prod-1", Value: decimal.RequireFromString("3.0")},
	}, nil).Once()
	m.products.On("SaveAverageRating", "prod-1", mock.Anything).Return(nil).Once()
	m.publisher.On("PublishProductEvent", "product.rated", mock.Anything).Return(nil).Once()

	err := service.RateProduct("prod-1", 4.3)

	assert.NoError(t, err)
	// 4.3 rounds to the nearest half point before storage.
	assert.Equal(t, "4.5", created.Value.StringFixed(1))
	// (4.5 + 3.0) / 2 = 3.75, rounded to 4.0.
	assert.Equal(t, "4.0", product.AverageRating.StringFixed(1))
	m.ratings.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestProductService_RateProduct_BoundaryValuesAccepted(t *testing.T) {
	for _, value := range []float64{1.0, 5.0} {
		service, m := newTestProductService()
		product := storedProduct()

		m.products.On("GetByID", "prod-1").Return(product, nil).Once()
		m.ratings.On("Create", mock.AnythingOfType("*models.Rating")).Return(nil).Once()
		m.ratings.On("FindAllByProduct", "prod-1").Return([]models.Rating{}, nil).Once()
		m.products.On("SaveAverageRating", "prod-1", mock.Anything).Return(nil).Once()
		m.publisher.On("PublishProductEvent", "product.rated", mock.Anything).Return(nil).Once()

		err := service.RateProduct("prod-1", value)

		assert.NoError(t, err, "value %v must be accepted", value)
		m.ratings.AssertExpectations(t)
	}
}

func TestProductService_RateProduct_OutOfRange(t *testing.T) {
	for _, value := range []float64{0.0, 0.5, 0.99, 5.01, 5.5} {
		service, m := newTestProductService()

		err := service.RateProduct("prod-1", value)

		var ratingErr *apperrors.InvalidRatingError
		assert.ErrorAs(t, err, &ratingErr, "value %v must be rejected", value)
		m.products.AssertNotCalled(t, "GetByID", mock.Anything)
		m.ratings.AssertNotCalled(t, "Create", mock.Anything)
	}
}

func TestProductService_RecomputeAverageRating_NoRatings(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.ratings.On("FindAllByProduct", "prod-1").Return([]models.Rating{}, nil).Once()
	m.products.On("SaveAverageRating", "prod-1", mock.Anything).Return(nil).Once()

	average, count, err := service.RecomputeAverageRating(product)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.True(t, average.IsZero())
	m.ratings.AssertExpectations(t)
	m.products.AssertExpectations(t)
}

func TestProductService_GetProductByID_AssemblesResponse(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.ratings.On("FindAllByProduct", "prod-1").Return([]models.Rating{
		{ProductID: "prod-1", Value: decimal.RequireFromString("5.0")},
	}, nil).Once()
	m.products.On("SaveAverageRating", "prod-1", mock.Anything).Return(nil).Once()
	m.suppliers.On("GetLinkByProduct", "prod-1").Return(&models.SupplierLink{
		ProductID:  "prod-1",
		SupplierID: "sup-1",
		Supplier:   models.Supplier{ID: "sup-1", Name: "Acme Distribution"},
	}, nil).Once()

	resp, err := service.GetProductByID("prod-1")

	assert.NoError(t, err)
	assert.Equal(t, "prod-1", resp.ID)
	assert.Equal(t, 90.00, resp.Price)
	// 90.00 under a 10% discount recovers to a 100.00 reference price.
	assert.Equal(t, 100.00, resp.OriginalPrice)
	assert.Equal(t, "10", resp.Discount)
	assert.Equal(t, "Acme Distribution", resp.Supplier)
	assert.Equal(t, "Electronics", resp.Category)
	assert.Equal(t, "Laptops", resp.SubCategory)
	assert.Equal(t, "Aurora Computing", resp.Manufacturer)
	assert.Equal(t, 5.0, resp.AverageRating)
	assert.Equal(t, 1, resp.RatingCount)
	assert.Equal(t, []string{"https://images.example/aurora-15/side.jpg"}, resp.Images)
	m.suppliers.AssertExpectations(t)
}

func TestProductService_GetProductByID_MissingSupplierLink(t *testing.T) {
	service, m := newTestProductService()
	product := storedProduct()

	m.products.On("GetByID", "prod-1").Return(product, nil).Once()
	m.ratings.On("FindAllByProduct", "prod-1").Return([]models.Rating{}, nil).Once()
	m.products.On("SaveAverageRating", "prod-1", mock.Anything).Return(nil).Once()
	m.suppliers.On("GetLinkByProduct", "prod-1").Return(nil, apperrors.ErrSupplierLinkNotFound).Once()

	resp, err := service.GetProductByID("prod-1")

	assert.NoError(t, err)
	assert.Equal(t, "N/A", resp.Supplier)
	assert.Equal(t, 0.0, resp.AverageRating)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	service, m := newTestProductService()

	m.products.On("GetByID", "missing").Return(nil, apperrors.ErrProductNotFound).Once()

	err := service.DeleteProduct("missing")

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	m.products.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestProductService_PublisherFailureDoesNotFailRegistration(t *testing.T) {
	service, m := newTestProductService()
	req := validProductRequest()

	m.catalog.On("FindDiscountByValue", "10").Return(&models.Discount{ID: 11, Value: "10"}, nil).Once()
	m.catalog.On("FindOrCreateManufacturer", "Aurora Computing").Return(&models.Manufacturer{ID: 1, Name: "Aurora Computing"}, nil).Once()
	m.catalog.On("FindSubCategoryByName", "Laptops").Return(&models.SubCategory{ID: 2, Name: "Laptops"}, nil).Once()
	m.suppliers.On("GetByName", "Acme Distribution").Return(&models.Supplier{ID: "sup-1", Name: "Acme Distribution"}, nil).Once()
	m.products.On("CreateWithSupplier", mock.AnythingOfType("*models.Product"), "sup-1").Return(nil).Once()
	m.publisher.On("PublishProductEvent", "product.registered", mock.Anything).Return(errors.New("broker unavailable")).Once()

	product, err := service.RegisterProduct(req)

	assert.NoError(t, err)
	assert.NotNil(t, product)
	m.publisher.AssertExpectations(t)
}
