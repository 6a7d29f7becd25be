package handlers

import (
	"log"

	"pegawai/internal/models"
	"pegawai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles HTTP requests for the employee operations.
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

// RegisterRoutes registers the employee routes with the Fiber app.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	employeeRoutes := router.Group("/employees")
	employeeRoutes.Get("/", h.HandleGetEmployees)
	employeeRoutes.Get("/:id", h.HandleGetEmployeeByID)
	employeeRoutes.Post("/", h.HandleAddEmployee)
	employeeRoutes.Put("/:id", h.HandleUpdateEmployee)
	employeeRoutes.Delete("/:id", h.HandleDeleteEmployeeByID)
}

// HandleGetEmployees retrieves all employees. No pagination or filtering.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Printf("Error getting all employees: %v", err)
		return handleServiceError(c, "Could not retrieve employees", err)
	}
	return c.JSON(employees)
}

// HandleGetEmployeeByID retrieves a single employee by its ID.
func (h *EmployeeHandler) HandleGetEmployeeByID(c *fiber.Ctx) error {
	employeeID := c.Params("id")
	employee, err := h.service.GetEmployeeByID(employeeID)
	if err != nil {
		log.Printf("Error getting employee by ID %s: %v", employeeID, err)
		return handleServiceError(c, "Could not retrieve employee", err)
	}
	return c.JSON(employee)
}

// HandleAddEmployee creates a new employee. All five fields are required;
// the validate tags reject missing ones (salary 0 included) before the
// service runs its own ordered per-field checks.
func (h *EmployeeHandler) HandleAddEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		log.Printf("Error parsing add employee request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   firstValidationError(err),
		})
	}

	if err := h.service.AddEmployee(&employee); err != nil {
		log.Printf("Error adding employee: %v", err)
		return handleServiceError(c, "Could not add employee", err)
	}

	return c.Status(fiber.StatusCreated).JSON(employee)
}

// UpdateEmployeeRequest represents the request body for an employee update.
// Every field is optional; zero values mean "leave unchanged".
type UpdateEmployeeRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Gender    string  `json:"gender"`
	Salary    float64 `json:"salary"`
}

// HandleUpdateEmployee applies a partial update to an existing employee and
// returns the updated record.
func (h *EmployeeHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("id")
	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update employee request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	patch := models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Gender:    req.Gender,
		Salary:    req.Salary,
	}

	employee, err := h.service.UpdateEmployee(employeeID, patch)
	if err != nil {
		log.Printf("Error updating employee %s: %v", employeeID, err)
		return handleServiceError(c, "Could not update employee", err)
	}

	return c.JSON(employee)
}

// HandleDeleteEmployeeByID permanently removes an employee and returns a
// confirmation message rather than the deleted record.
func (h *EmployeeHandler) HandleDeleteEmployeeByID(c *fiber.Ctx) error {
	employeeID := c.Params("id")
	confirmation, err := h.service.DeleteEmployeeByID(employeeID)
	if err != nil {
		log.Printf("Error deleting employee %s: %v", employeeID, err)
		return handleServiceError(c, "Could not delete employee", err)
	}

	return c.JSON(fiber.Map{
		"message": confirmation,
	})
}
