package handler

import (
	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/request"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles employee creation
// @Summary Create Employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DocumentType:          req.DocumentType,
		DocumentNumber:        req.DocumentNumber,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Position:              req.Position,
		Department:            req.Department,
		HireDate:              req.HireDate,
		MonthlySalary:         req.MonthlySalary,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// List handles listing employees with filters
// @Summary List Employees
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name, code or email"
// @Param department query string false "Filter by department"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.APIResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	result, err := h.employeeService.ListEmployees(
		c.Request.Context(),
		PaginationFromQuery(c),
		c.Query("search"),
		c.Query("department"),
		c.Query("status"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Get handles fetching a single employee
// @Summary Get Employee
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles a partial employee update
// @Summary Update Employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body request.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), &service.UpdateEmployeeInput{
		ID:                    id,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DocumentType:          req.DocumentType,
		DocumentNumber:        req.DocumentNumber,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Position:              req.Position,
		Department:            req.Department,
		HireDate:              req.HireDate,
		MonthlySalary:         req.MonthlySalary,
		Status:                req.Status,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles employee deletion
// @Summary Delete Employee
// @Tags employees
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
