package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
	guard   fiber.Handler
}

// NewProductHandler creates a new ProductHandler. The guard middleware
// protects the mutating routes.
func NewProductHandler(service *services.ProductService, guard fiber.Handler) *ProductHandler {
	return &ProductHandler{
		service: service,
		guard:   guard,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleFilterProducts)
	productRoutes.Get("/discounted", h.HandleGetDiscounted)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/:id/rating", h.HandleRateProduct)
	productRoutes.Post("/", h.guard, h.HandleRegisterProduct)
	productRoutes.Put("/:id", h.guard, h.HandleUpdateProduct)
	productRoutes.Delete("/:id/discount", h.guard, h.HandleRemoveDiscount)
	productRoutes.Delete("/:id", h.guard, h.HandleDeleteProduct)
}

// HandleFilterProducts lists the catalog through the composed filter.
// With no query parameters it returns the full set, paginated.
func (h *ProductHandler) HandleFilterProducts(c *fiber.Ctx) error {
	var filter models.ProductFilter
	if err := c.QueryParser(&filter); err != nil {
		log.Printf("Error parsing product filter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid filter parameters",
			"error":   err.Error(),
		})
	}

	products, err := h.service.FilterProducts(filter)
	if err != nil {
		log.Printf("Error filtering products: %v", err)
		return respondProductError(c, err)
	}
	return c.JSON(products)
}

// HandleGetDiscounted lists every product with an active discount.
func (h *ProductHandler) HandleGetDiscounted(c *fiber.Ctx) error {
	products, err := h.service.GetDiscountedProducts()
	if err != nil {
		log.Printf("Error getting discounted products: %v", err)
		return respondProductError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single assembled product view.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return respondProductError(c, err)
	}
	return c.JSON(product)
}

// HandleRegisterProduct registers a new product.
func (h *ProductHandler) HandleRegisterProduct(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.RegisterProduct(&req)
	if err != nil {
		log.Printf("Error registering product: %v", err)
		return respondProductError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product registered successfully",
		"id":      product.ID,
	})
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateProduct(productID, &req); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return respondProductError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
	})
}

// HandleDeleteProduct removes a product and its supplier link.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return respondProductError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleRemoveDiscount resets a product to the no-discount sentinel.
func (h *ProductHandler) HandleRemoveDiscount(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.RemoveDiscount(productID); err != nil {
		log.Printf("Error removing discount from product %s: %v", productID, err)
		return respondProductError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Discount removed successfully",
	})
}

// HandleRateProduct submits a rating for a product.
func (h *ProductHandler) HandleRateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req models.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rating request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rating value is required",
		})
	}

	if err := h.service.RateProduct(productID, *req.Value); err != nil {
		log.Printf("Error rating product %s: %v", productID, err)
		return respondProductError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Rating submitted successfully",
	})
}

// respondProductError maps the service error taxonomy onto distinct
// HTTP statuses. Validation errors carry their field code so clients
// can map them back onto form fields.
func respondProductError(c *fiber.Ctx, err error) error {
	var fieldErr *apperrors.FieldError
	if errors.As(err, &fieldErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"field":   string(fieldErr.Field),
			"error":   fieldErr.Message,
		})
	}

	var discountErr *apperrors.InvalidDiscountError
	if errors.As(err, &discountErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid discount",
			"field":   string(apperrors.FieldDiscount),
			"error":   discountErr.Error(),
		})
	}

	var ratingErr *apperrors.InvalidRatingError
	if errors.As(err, &ratingErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid rating",
			"error":   ratingErr.Error(),
		})
	}

	if errors.Is(err, apperrors.ErrProductNotFound) ||
		errors.Is(err, apperrors.ErrSupplierNotFound) ||
		errors.Is(err, apperrors.ErrSupplierLinkNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
