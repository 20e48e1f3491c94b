package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		db: db,
	}
}

// GetAll retrieves all employees.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// FindByName filters employees by a case-insensitive name fragment,
// paginated. Employee listings default to a page size of 5.
func (r *GORMEmployeeRepository) FindByName(filter models.EmployeeFilter) ([]models.Employee, error) {
	query := r.db.Model(&models.Employee{})
	if strings.TrimSpace(filter.Name) != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	page := filter.Page
	if page <= 0 {
		page = 0
	}
	size := filter.Size
	if size <= 0 {
		size = 5
	}

	var employees []models.Employee
	if err := query.Offset(page * size).Limit(size).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to filter employees: %w", err)
	}
	return employees, nil
}

// GetByEmail retrieves an employee by email.
func (r *GORMEmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", email, apperrors.ErrEmployeeNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by email %s: %w", email, err)
	}
	return &employee, nil
}

// GetByCPF retrieves an employee by CPF. Used to keep the CPF unique
// across records when one is updated.
func (r *GORMEmployeeRepository) GetByCPF(cpf string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee with cpf %s: %w", cpf, apperrors.ErrEmployeeNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by cpf %s: %w", cpf, err)
	}
	return &employee, nil
}

// Create creates a new employee record.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Save persists changes to an existing employee record.
func (r *GORMEmployeeRepository) Save(employee *models.Employee) error {
	res := r.db.Save(employee)
	if res.Error != nil {
		return fmt.Errorf("failed to save employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %s: %w", employee.Email, apperrors.ErrEmployeeNotFound)
	}
	return nil
}
