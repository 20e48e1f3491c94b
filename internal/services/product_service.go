package services

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/pricing"
	"storefront/internal/repositories"
)

// EventPublisher publishes catalog events. Satisfied by the RabbitMQ
// client; may be nil, in which case events are skipped.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products: request
// verification, discount resolution, price computation, rating
// aggregation and response assembly.
type ProductService struct {
	productRepo  repositories.ProductRepository
	catalogRepo  repositories.CatalogRepository
	ratingRepo   repositories.RatingRepository
	supplierRepo repositories.SupplierRepository
	publisher    EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(
	productRepo repositories.ProductRepository,
	catalogRepo repositories.CatalogRepository,
	ratingRepo repositories.RatingRepository,
	supplierRepo repositories.SupplierRepository,
	publisher EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		catalogRepo:  catalogRepo,
		ratingRepo:   ratingRepo,
		supplierRepo: supplierRepo,
		publisher:    publisher,
	}
}

// GetAllProducts retrieves every product as an assembled response.
func (s *ProductService) GetAllProducts() ([]models.ProductResponse, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.assembleAll(products)
}

// GetDiscountedProducts retrieves every product carrying a discount
// other than the "0" sentinel.
func (s *ProductService) GetDiscountedProducts() ([]models.ProductResponse, error) {
	products, err := s.productRepo.GetAllWithDiscount()
	if err != nil {
		return nil, err
	}
	return s.assembleAll(products)
}

// GetProductByID retrieves a single assembled product view.
func (s *ProductService) GetProductByID(id string) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.assemble(product)
}

// FilterProducts executes the composed catalog filter and assembles the
// matching page.
func (s *ProductService) FilterProducts(filter models.ProductFilter) ([]models.ProductResponse, error) {
	products, err := s.productRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(products)
}

// RegisterProduct validates the request, resolves its references, and
// writes the product together with its supplier link. The supplier is
// resolved before anything is written: an unknown supplier fails the
// whole registration.
func (s *ProductService) RegisterProduct(req *models.ProductRequest) (*models.Product, error) {
	if err := verifyRegisterRequest(req); err != nil {
		return nil, err
	}

	discount, err := s.resolveDiscount(req.Discount)
	if err != nil {
		return nil, err
	}
	manufacturer, err := s.catalogRepo.FindOrCreateManufacturer(req.Manufacturer)
	if err != nil {
		return nil, err
	}
	subCategory, err := s.lookupSubCategory(req.SubCategory)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.GetByName(req.Supplier)
	if err != nil {
		return nil, err
	}

	storedPrice, err := pricing.ApplyDiscount(decimal.NewFromFloat(*req.Price), discount.Value)
	if err != nil {
		return nil, err
	}

	images := make([]models.ProductImage, 0, len(req.Images))
	for _, url := range req.Images {
		images = append(images, models.ProductImage{URL: url})
	}

	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Color:          req.Color,
		Price:          storedPrice,
		Model:          req.Model,
		Weight:         *req.Weight,
		Height:         *req.Height,
		Length:         *req.Length,
		Width:          *req.Width,
		ManufacturerID: manufacturer.ID,
		Manufacturer:   *manufacturer,
		SubCategoryID:  subCategory.ID,
		SubCategory:    *subCategory,
		MainImage:      req.MainImage,
		Images:         images,
		DiscountID:     discount.ID,
		Discount:       *discount,
	}

	if err := s.productRepo.CreateWithSupplier(product, supplier.ID); err != nil {
		return nil, err
	}

	s.publish("product.registered", map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"price":     product.Price.InexactFloat64(),
		"discount":  product.Discount.Value,
	})

	return product, nil
}

// UpdateProduct applies a partial update: absent fields keep their
// prior value. A new price input is taken as the current (discounted)
// price under the old discount; it is converted back to an undiscounted
// reference and the resolved discount is re-applied, so repeated edits
// at the same input do not drift.
func (s *ProductService) UpdateProduct(id string, req *models.ProductRequest) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}

	manufacturer := &product.Manufacturer
	if strings.TrimSpace(req.Manufacturer) != "" {
		if manufacturer, err = s.catalogRepo.FindOrCreateManufacturer(req.Manufacturer); err != nil {
			return err
		}
	}
	subCategory := &product.SubCategory
	if strings.TrimSpace(req.SubCategory) != "" {
		if subCategory, err = s.lookupSubCategory(req.SubCategory); err != nil {
			return err
		}
	}
	discount := &product.Discount
	if strings.TrimSpace(req.Discount) != "" {
		if discount, err = s.resolveDiscount(req.Discount); err != nil {
			return err
		}
	}

	oldDiscount := product.Discount.Value
	currentPrice := product.Price
	if req.Price != nil {
		currentPrice = decimal.NewFromFloat(*req.Price)
	}
	basePrice, err := pricing.RecoverBasePrice(currentPrice, oldDiscount)
	if err != nil {
		return err
	}
	storedPrice, err := pricing.ApplyDiscount(basePrice, discount.Value)
	if err != nil {
		return err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Color != "" {
		product.Color = req.Color
	}
	if req.Model != "" {
		product.Model = req.Model
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.Height != nil {
		product.Height = *req.Height
	}
	if req.Length != nil {
		product.Length = *req.Length
	}
	if req.Width != nil {
		product.Width = *req.Width
	}
	product.Price = storedPrice
	product.ManufacturerID = manufacturer.ID
	product.Manufacturer = *manufacturer
	product.SubCategoryID = subCategory.ID
	product.SubCategory = *subCategory
	product.DiscountID = discount.ID
	product.Discount = *discount

	if err := verifyUpdatedProduct(product); err != nil {
		return err
	}

	return s.productRepo.Update(product)
}

// DeleteProduct removes a product and its supplier link together.
func (s *ProductService) DeleteProduct(id string) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// RemoveDiscount resets a product to the "0" sentinel discount,
// restoring the undiscounted reference price as the stored price.
func (s *ProductService) RemoveDiscount(id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}

	basePrice, err := pricing.RecoverBasePrice(product.Price, product.Discount.Value)
	if err != nil {
		return err
	}
	noDiscount, err := s.resolveDiscount("")
	if err != nil {
		return err
	}

	product.Price = basePrice
	product.DiscountID = noDiscount.ID
	product.Discount = *noDiscount
	return s.productRepo.Update(product)
}

// RateProduct stores a rating for a product, rounded to the nearest
// half point, and recomputes the persisted average.
func (s *ProductService) RateProduct(id string, value float64) error {
	if value < 1.0 || value > 5.0 {
		return &apperrors.InvalidRatingError{Value: value}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}

	rating := &models.Rating{
		ProductID: product.ID,
		Value:     pricing.RoundToHalf(decimal.NewFromFloat(value)),
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return err
	}

	average, _, err := s.RecomputeAverageRating(product)
	if err != nil {
		return err
	}

	s.publish("product.rated", map[string]interface{}{
		"productID": product.ID,
		"rating":    rating.Value.InexactFloat64(),
		"average":   average.InexactFloat64(),
	})

	return nil
}

// RecomputeAverageRating averages every rating for the product, rounds
// to the nearest half point and persists the result onto the product
// row. It is an explicit, idempotent mutation; response assembly calls
// it so every assembled view carries a fresh average. Concurrent
// submissions race last-writer-wins, which is acceptable here.
func (s *ProductService) RecomputeAverageRating(product *models.Product) (decimal.Decimal, int, error) {
	ratings, err := s.ratingRepo.FindAllByProduct(product.ID)
	if err != nil {
		return decimal.Zero, 0, err
	}

	average := decimal.Zero
	if len(ratings) > 0 {
		sum := decimal.Zero
		for _, r := range ratings {
			sum = sum.Add(r.Value)
		}
		average = pricing.RoundToHalf(sum.Div(decimal.NewFromInt(int64(len(ratings)))))
	}

	if err := s.productRepo.SaveAverageRating(product.ID, average); err != nil {
		return decimal.Zero, 0, err
	}
	product.AverageRating = average
	return average, len(ratings), nil
}

// resolveDiscount maps a textual percentage onto its stored discount
// record. Blank resolves to the canonical "0" row. A non-blank value
// with no matching row is invalid; this resolver never creates rows.
func (s *ProductService) resolveDiscount(value string) (*models.Discount, error) {
	lookup := value
	if strings.TrimSpace(lookup) == "" {
		lookup = pricing.NoDiscount
	}
	discount, err := s.catalogRepo.FindDiscountByValue(lookup)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.InvalidDiscountError{Value: value}
		}
		return nil, err
	}
	return discount, nil
}

// lookupSubCategory never auto-creates: an unknown sub-category is a
// field-tagged validation error. Manufacturers self-heal instead; the
// asymmetry is an inherited business rule pending product-owner review.
func (s *ProductService) lookupSubCategory(name string) (*models.SubCategory, error) {
	subCategory, err := s.catalogRepo.FindSubCategoryByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewFieldError(apperrors.FieldSubCategory, "unknown sub-category")
		}
		return nil, err
	}
	return subCategory, nil
}

func (s *ProductService) assembleAll(products []models.Product) ([]models.ProductResponse, error) {
	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		resp, err := s.assemble(&products[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// assemble builds the fully computed product view: effective price,
// recovered original price, fresh average rating, image list, supplier
// and category names.
func (s *ProductService) assemble(product *models.Product) (*models.ProductResponse, error) {
	average, ratingCount, err := s.RecomputeAverageRating(product)
	if err != nil {
		return nil, err
	}

	originalPrice := product.Price
	if product.Discount.Value != pricing.NoDiscount {
		if originalPrice, err = pricing.RecoverBasePrice(product.Price, product.Discount.Value); err != nil {
			return nil, err
		}
	}

	supplierName, err := s.supplierName(product.ID)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, img.URL)
	}

	return &models.ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Color:         product.Color,
		Price:         product.Price.InexactFloat64(),
		OriginalPrice: originalPrice.InexactFloat64(),
		Model:         product.Model,
		Weight:        product.Weight,
		Height:        product.Height,
		Length:        product.Length,
		Width:         product.Width,
		Manufacturer:  product.Manufacturer.Name,
		Supplier:      supplierName,
		Category:      product.SubCategory.Category.Name,
		SubCategory:   product.SubCategory.Name,
		MainImage:     product.MainImage,
		Images:        images,
		Discount:      product.Discount.Value,
		AverageRating: average.InexactFloat64(),
		RatingCount:   ratingCount,
	}, nil
}

// supplierName renders a missing supplier link as "N/A", not an error.
func (s *ProductService) supplierName(productID string) (string, error) {
	link, err := s.supplierRepo.GetLinkByProduct(productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierLinkNotFound) {
			return "N/A", nil
		}
		return "", err
	}
	return link.Supplier.Name, nil
}

func (s *ProductService) publish(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	if err := s.publisher.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}

func verifyRegisterRequest(req *models.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewFieldError(apperrors.FieldName, "name is required")
	}
	if len(req.Name) < 5 || len(req.Name) > 100 {
		return apperrors.NewFieldError(apperrors.FieldName, "name must be between 5 and 100 characters")
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewFieldError(apperrors.FieldDescription, "description is required")
	}
	if len(req.Description) < 5 || len(req.Description) > 1024 {
		return apperrors.NewFieldError(apperrors.FieldDescription, "description must be between 5 and 1024 characters")
	}
	if strings.TrimSpace(req.Color) == "" {
		return apperrors.NewFieldError(apperrors.FieldColor, "color is required")
	}
	if len(req.Color) < 2 || len(req.Color) > 30 {
		return apperrors.NewFieldError(apperrors.FieldColor, "color must be between 2 and 30 characters")
	}
	if req.Price == nil {
		return apperrors.NewFieldError(apperrors.FieldPrice, "price is required")
	}
	if *req.Price < 0.00 || *req.Price > 99999999.99 {
		return apperrors.NewFieldError(apperrors.FieldPrice, "price must be between 0.00 and 99999999.99")
	}
	if strings.TrimSpace(req.Model) == "" {
		return apperrors.NewFieldError(apperrors.FieldModel, "model is required")
	}
	if len(req.Model) < 2 || len(req.Model) > 30 {
		return apperrors.NewFieldError(apperrors.FieldModel, "model must be between 2 and 30 characters")
	}
	if req.Weight == nil {
		return apperrors.NewFieldError(apperrors.FieldWeight, "weight is required")
	}
	if *req.Weight < 0 || *req.Weight > 1000 {
		return apperrors.NewFieldError(apperrors.FieldWeight, "weight must be positive and below 1000kg")
	}
	if req.Height == nil {
		return apperrors.NewFieldError(apperrors.FieldHeight, "height is required")
	}
	if *req.Height < 0 || *req.Height > 500 {
		return apperrors.NewFieldError(apperrors.FieldHeight, "height must be positive and below 500cm")
	}
	if req.Length == nil {
		return apperrors.NewFieldError(apperrors.FieldLength, "length is required")
	}
	if *req.Length < 0 || *req.Length > 500 {
		return apperrors.NewFieldError(apperrors.FieldLength, "length must be positive and below 500cm")
	}
	if req.Width == nil {
		return apperrors.NewFieldError(apperrors.FieldWidth, "width is required")
	}
	if *req.Width < 0 || *req.Width > 500 {
		return apperrors.NewFieldError(apperrors.FieldWidth, "width must be positive and below 500cm")
	}
	if strings.TrimSpace(req.Manufacturer) == "" {
		return apperrors.NewFieldError(apperrors.FieldManufacturer, "manufacturer is required")
	}
	if len(req.Manufacturer) < 2 || len(req.Manufacturer) > 50 {
		return apperrors.NewFieldError(apperrors.FieldManufacturer, "manufacturer must be between 2 and 50 characters")
	}
	if strings.TrimSpace(req.Supplier) == "" {
		return apperrors.NewFieldError(apperrors.FieldGlobal, "supplier is required")
	}
	if strings.TrimSpace(req.SubCategory) == "" {
		return apperrors.NewFieldError(apperrors.FieldSubCategory, "sub-category is required")
	}
	if len(req.SubCategory) < 2 || len(req.SubCategory) > 30 {
		return apperrors.NewFieldError(apperrors.FieldSubCategory, "sub-category must be between 2 and 30 characters")
	}
	if strings.TrimSpace(req.MainImage) == "" {
		return apperrors.NewFieldError(apperrors.FieldMainImage, "main image is required")
	}
	if len(req.Images) == 0 {
		return apperrors.NewFieldError(apperrors.FieldImages, "at least one secondary image is required")
	}
	return nil
}

func verifyUpdatedProduct(product *models.Product) error {
	if len(product.Name) < 5 || len(product.Name) > 100 {
		return apperrors.NewFieldError(apperrors.FieldName, "name must be between 5 and 100 characters")
	}
	if len(product.Description) < 5 || len(product.Description) > 1024 {
		return apperrors.NewFieldError(apperrors.FieldDescription, "description must be between 5 and 1024 characters")
	}
	if len(product.Color) < 2 || len(product.Color) > 30 {
		return apperrors.NewFieldError(apperrors.FieldColor, "color must be between 2 and 30 characters")
	}
	if product.Price.IsNegative() || product.Price.GreaterThan(decimal.NewFromFloat(99999999.99)) {
		return apperrors.NewFieldError(apperrors.FieldPrice, "price must be between 0.00 and 99999999.99")
	}
	if len(product.Model) < 2 || len(product.Model) > 30 {
		return apperrors.NewFieldError(apperrors.FieldModel, "model must be between 2 and 30 characters")
	}
	if product.Weight < 0 || product.Weight > 1000 {
		return apperrors.NewFieldError(apperrors.FieldWeight, "weight must be positive and below 1000kg")
	}
	if product.Height < 0 || product.Height > 500 {
		return apperrors.NewFieldError(apperrors.FieldHeight, "height must be positive and below 500cm")
	}
	if product.Length < 0 || product.Length > 500 {
		return apperrors.NewFieldError(apperrors.FieldLength, "length must be positive and below 500cm")
	}
	if product.Width < 0 || product.Width > 500 {
		return apperrors.NewFieldError(apperrors.FieldWidth, "width must be positive and below 500cm")
	}
	if len(product.Manufacturer.Name) < 2 || len(product.Manufacturer.Name) > 50 {
		return apperrors.NewFieldError(apperrors.FieldManufacturer, "manufacturer must be between 2 and 50 characters")
	}
	if len(product.SubCategory.Name) < 2 || len(product.SubCategory.Name) > 30 {
		return apperrors.NewFieldError(apperrors.FieldSubCategory, "sub-category must be between 2 and 30 characters")
	}
	if strings.TrimSpace(product.MainImage) == "" {
		return apperrors.NewFieldError(apperrors.FieldMainImage, "main image is required")
	}
	return nil
}
