package repositories

import (
	"storefront/internal/models"
)

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	FindByName(filter models.EmployeeFilter) ([]models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByCPF(cpf string) (*models.Employee, error)
	Create(employee *models.Employee) error
	Save(employee *models.Employee) error
}
