package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	infraRepo "github.com/g2rism/backoffice-api/internal/infrastructure/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(t *testing.T) *EmployeeService {
	t.Helper()
	return NewEmployeeService(infraRepo.NewEmployeeRepository(setupTestDB(t)))
}

func TestCreateEmployee(t *testing.T) {
	svc := newEmployeeService(t)

	employee, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
		FirstName:     "Carlos",
		LastName:      "Rojas",
		Email:         "carlos@g2rism.com",
		Position:      "Asesor de viajes",
		Department:    "Ventas",
		HireDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MonthlySalary: decimal.NewFromInt(2800000),
	})
	require.NoError(t, err)

	assert.Equal(t, "E000001", employee.Code)
	assert.Equal(t, "Carlos Rojas", employee.FullName)
	assert.Equal(t, enum.EmployeeStatusActive, employee.Status)
}

func TestCreateEmployee_RejectsDuplicateEmail(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	input := &CreateEmployeeInput{
		FirstName: "Carlos",
		Email:     "carlos@g2rism.com",
		Position:  "Asesor de viajes",
		HireDate:  time.Now(),
	}
	_, err := svc.CreateEmployee(ctx, input)
	require.NoError(t, err)

	input.FirstName = "Otro"
	_, err = svc.CreateEmployee(ctx, input)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, &CreateEmployeeInput{Position: "Asesor"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.CreateEmployee(ctx, &CreateEmployeeInput{
		FirstName:     "Carlos",
		Position:      "Asesor",
		MonthlySalary: decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUpdateEmployee_StatusAndSalary(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, &CreateEmployeeInput{
		FirstName: "Carlos",
		Email:     "carlos@g2rism.com",
		Position:  "Asesor de viajes",
		HireDate:  time.Now(),
	})
	require.NoError(t, err)

	onLeave := enum.EmployeeStatusOnLeave.String()
	salary := decimal.NewFromInt(3000000)
	updated, err := svc.UpdateEmployee(ctx, &UpdateEmployeeInput{
		ID:            employee.ID,
		Status:        &onLeave,
		MonthlySalary: &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.EmployeeStatusOnLeave, updated.Status)
	assert.True(t, updated.MonthlySalary.Equal(salary))

	invalid := "retired"
	_, err = svc.UpdateEmployee(ctx, &UpdateEmployeeInput{ID: employee.ID, Status: &invalid})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestListEmployees_Filters(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, &CreateEmployeeInput{
		FirstName: "Carlos", LastName: "Rojas", Email: "carlos@g2rism.com",
		Position: "Asesor de viajes", Department: "Ventas", HireDate: time.Now(),
	})
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, &CreateEmployeeInput{
		FirstName: "Diana", LastName: "Mejia", Email: "diana@g2rism.com",
		Position: "Contadora", Department: "Administración", HireDate: time.Now(),
	})
	require.NoError(t, err)

	params := &pagination.PaginationParams{Page: 1, PerPage: 10}

	result, err := svc.ListEmployees(ctx, params, "", "Ventas", "")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Carlos Rojas", result.Items[0].FullName)

	result, err = svc.ListEmployees(ctx, params, "diana", "all", "all")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Diana Mejia", result.Items[0].FullName)
}

func TestDeleteEmployee(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, &CreateEmployeeInput{
		FirstName: "Carlos", Email: "carlos@g2rism.com",
		Position: "Asesor de viajes", HireDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, employee.ID))

	_, err = svc.GetEmployee(ctx, employee.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
