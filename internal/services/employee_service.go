package services

import (
	"errors"
	"fmt"
	"log"

	"pegawai/internal/models"
	"pegawai/internal/repositories"
)

// EventPublisher publishes employee change events to a message broker.
// pkg/rabbitmq provides the production implementation.
type EventPublisher interface {
	PublishEmployeeEvent(event map[string]interface{}) error
}

// EmployeeService handles business logic related to employees.
type EmployeeService struct {
	repo   repositories.EmployeeRepository
	events EventPublisher // may be nil when no broker is configured
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository, events EventPublisher) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		events: events,
	}
}

// GetAllEmployees retrieves every employee in storage order.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// GetEmployeeByID retrieves a single employee by its ID.
func (s *EmployeeService) GetEmployeeByID(id string) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// AddEmployee validates and persists a new employee. Checks run per field in
// declaration order so the first missing field is the one reported. Salary is
// tested against zero, which rejects an explicit salary of 0 exactly like the
// upstream check.
func (s *EmployeeService) AddEmployee(employee *models.Employee) error {
	if employee.FirstName == "" {
		return fmt.Errorf("first name is required: %w", ErrValidation)
	}
	if employee.LastName == "" {
		return fmt.Errorf("last name is required: %w", ErrValidation)
	}
	if employee.Email == "" {
		return fmt.Errorf("email is required: %w", ErrValidation)
	}
	if employee.Gender == "" {
		return fmt.Errorf("gender is required: %w", ErrValidation)
	}
	if employee.Salary == 0 {
		return fmt.Errorf("salary is required: %w", ErrValidation)
	}

	if err := s.repo.Create(employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	s.publish("employee.created", employee)
	return nil
}

// UpdateEmployee overwrites the stored attributes for which patch carries a
// non-zero value and leaves the rest untouched. A patch salary of 0 counts as
// "not supplied" under the same zero test as AddEmployee.
func (s *EmployeeService) UpdateEmployee(id string, patch models.Employee) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if patch.FirstName != "" {
		employee.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		employee.LastName = patch.LastName
	}
	if patch.Email != "" {
		employee.Email = patch.Email
	}
	if patch.Gender != "" {
		employee.Gender = patch.Gender
	}
	if patch.Salary != 0 {
		employee.Salary = patch.Salary
	}

	if err := s.repo.Update(employee); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee %s: %w", id, err)
	}

	s.publish("employee.updated", employee)
	return employee, nil
}

// DeleteEmployeeByID removes an employee permanently and returns a
// confirmation message. Deleting an id that does not exist (including one
// already deleted) fails with ErrEmployeeNotFound.
func (s *EmployeeService) DeleteEmployeeByID(id string) (string, error) {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to delete employee %s: %w", id, err)
	}

	s.publish("employee.deleted", &models.Employee{ID: id})
	return "Employee deleted successfully", nil
}

// publish sends an employee change event to the broker, if one is configured.
// Publish failures are logged and never surfaced to the API caller: the
// database write has already succeeded.
func (s *EmployeeService) publish(eventType string, employee *models.Employee) {
	if s.events == nil {
		return
	}
	event := map[string]interface{}{
		"type":       eventType,
		"employeeID": employee.ID,
	}
	if eventType != "employee.deleted" {
		event["first_name"] = employee.FirstName
		event["last_name"] = employee.LastName
		event["salary"] = employee.Salary
	}
	if err := s.events.PublishEmployeeEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for employee %s: %v", eventType, employee.ID, err)
	}
}
