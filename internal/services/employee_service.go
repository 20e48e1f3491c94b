package services

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// EmployeeService handles business logic for employee records.
type EmployeeService struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

// GetAllEmployees retrieves every employee record.
func (s *EmployeeService) GetAllEmployees() ([]models.EmployeeResponse, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// FilterByName retrieves a paginated employee listing filtered by a
// name fragment.
func (s *EmployeeService) FilterByName(filter models.EmployeeFilter) ([]models.EmployeeResponse, error) {
	employees, err := s.repo.FindByName(filter)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// GetEmployeeByEmail retrieves a single employee record.
func (s *EmployeeService) GetEmployeeByEmail(email string) (*models.EmployeeResponse, error) {
	employee, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// UpdateEmployee applies a partial update: absent fields keep their
// prior value. A changed CPF must not already belong to another record.
func (s *EmployeeService) UpdateEmployee(email string, req *models.EmployeeRequest) error {
	employee, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}

	if req.CPF != "" && req.CPF != employee.CPF {
		holder, err := s.repo.GetByCPF(req.CPF)
		if err != nil && !errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return err
		}
		if holder != nil && holder.Email != employee.Email {
			return apperrors.ErrCPFInUse
		}
		employee.CPF = req.CPF
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.BirthDate != nil {
		employee.BirthDate = *req.BirthDate
	}
	if req.HireDate != nil {
		employee.HireDate = *req.HireDate
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}

	return s.repo.Save(employee)
}

// ToggleSituation flips each listed employee between active and
// inactive.
func (s *EmployeeService) ToggleSituation(emails []string) error {
	for _, email := range emails {
		employee, err := s.repo.GetByEmail(email)
		if err != nil {
			return err
		}
		if employee.Situation == models.SituationActive {
			employee.Situation = models.SituationInactive
		} else {
			employee.Situation = models.SituationActive
		}
		if err := s.repo.Save(employee); err != nil {
			return err
		}
	}
	return nil
}

// DeactivateEmployee soft-deletes an employee by setting the situation
// to inactive; rows are never removed.
func (s *EmployeeService) DeactivateEmployee(email string) error {
	employee, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if employee.Situation == models.SituationActive {
		employee.Situation = models.SituationInactive
		return s.repo.Save(employee)
	}
	return nil
}

func toEmployeeResponse(e *models.Employee) models.EmployeeResponse {
	return models.EmployeeResponse{
		Name:      e.Name,
		BirthDate: e.BirthDate,
		HireDate:  e.HireDate,
		Phone:     e.Phone,
		CPF:       e.CPF,
		Email:     e.Email,
		Situation: e.Situation,
	}
}

func toEmployeeResponses(employees []models.Employee) []models.EmployeeResponse {
	responses := make([]models.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	return responses
}
