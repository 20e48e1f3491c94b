package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the employee routes with the Fiber app. The
// whole group is expected to sit behind the auth middleware.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	employeeRoutes := router.Group("/employees")
	employeeRoutes.Get("/", h.HandleGetEmployees)
	employeeRoutes.Get("/search", h.HandleFilterEmployees)
	employeeRoutes.Patch("/situation", h.HandleToggleSituation)
	employeeRoutes.Get("/:email", h.HandleGetEmployeeByEmail)
	employeeRoutes.Put("/:email", h.HandleUpdateEmployee)
	employeeRoutes.Delete("/:email", h.HandleDeactivateEmployee)
}

// HandleGetEmployees retrieves all employees.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Printf("Error getting all employees: %v", err)
		return respondEmployeeError(c, err)
	}
	return c.JSON(employees)
}

// HandleFilterEmployees retrieves a paginated listing filtered by name.
func (h *EmployeeHandler) HandleFilterEmployees(c *fiber.Ctx) error {
	var filter models.EmployeeFilter
	if err := c.QueryParser(&filter); err != nil {
		log.Printf("Error parsing employee filter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid filter parameters",
			"error":   err.Error(),
		})
	}

	employees, err := h.service.FilterByName(filter)
	if err != nil {
		log.Printf("Error filtering employees: %v", err)
		return respondEmployeeError(c, err)
	}
	return c.JSON(employees)
}

// HandleGetEmployeeByEmail retrieves a single employee record.
func (h *EmployeeHandler) HandleGetEmployeeByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	employee, err := h.service.GetEmployeeByEmail(email)
	if err != nil {
		log.Printf("Error getting employee %s: %v", email, err)
		return respondEmployeeError(c, err)
	}
	return c.JSON(employee)
}

// HandleUpdateEmployee applies a partial update to an employee record.
func (h *EmployeeHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	email := c.Params("email")
	var req models.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing employee update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.UpdateEmployee(email, &req); err != nil {
		log.Printf("Error updating employee %s: %v", email, err)
		return respondEmployeeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Employee updated successfully",
	})
}

// HandleToggleSituation flips the situation of the listed employees.
func (h *EmployeeHandler) HandleToggleSituation(c *fiber.Ctx) error {
	var req models.SituationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing situation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one valid email is required",
			"error":   err.Error(),
		})
	}

	if err := h.service.ToggleSituation(req.Emails); err != nil {
		log.Printf("Error toggling employee situation: %v", err)
		return respondEmployeeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Employee situation updated successfully",
	})
}

// HandleDeactivateEmployee soft-deletes an employee record.
func (h *EmployeeHandler) HandleDeactivateEmployee(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.service.DeactivateEmployee(email); err != nil {
		log.Printf("Error deactivating employee %s: %v", email, err)
		return respondEmployeeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondEmployeeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrEmployeeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Employee not found",
			"error":   err.Error(),
		})
	}
	if errors.Is(err, apperrors.ErrCPFInUse) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "CPF already in use",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
