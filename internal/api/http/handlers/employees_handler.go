package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hiring-service/internal/api/dto"
	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/service"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// EmployeesHandler exposes employee CRUD, CSV import and the hires report.
type EmployeesHandler struct {
	service  *service.EmployeeService
	importer *service.ImportService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService, importService *service.ImportService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService, importer: importService}
}

// Create POST /employees/.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.HireDatetime.IsZero() {
		return apperrors.NewValidationError("id, name, hire_datetime required", nil)
	}

	emp, err := h.service.Create(c.Context(), &domain.Employee{
		ID:           req.ID,
		Name:         req.Name,
		HireDatetime: req.HireDatetime,
		DepartmentID: req.DepartmentID,
		JobID:        req.JobID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Get GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	emp, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// List GET /employees/?offset&limit.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	emps, err := h.service.List(c.Context(), c.QueryInt("offset", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		items = append(items, employeeResponse(&emps[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	emp, err := h.service.Update(c.Context(), id, service.EmployeePatch{
		Name:         req.Name,
		HireDatetime: req.HireDatetime,
		DepartmentID: req.DepartmentID,
		JobID:        req.JobID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Delete DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UploadCSV POST /employees/csv/.
func (h *EmployeesHandler) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("csv file required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return apperrors.NewImportError("cannot read uploaded file", err)
	}
	defer src.Close()

	summary, err := h.importer.ImportEmployees(c.Context(), src)
	if err != nil {
		return err
	}
	return c.JSON(importSummaryResponse(summary))
}

// HiresByQuarter GET /employees/reports/hires/departments/q/:year.
func (h *EmployeesHandler) HiresByQuarter(c *fiber.Ctx) error {
	year, err := paramInt64(c, "year")
	if err != nil {
		return err
	}
	report, err := h.service.HiresByQuarter(c.Context(), int(year))
	if err != nil {
		return err
	}
	items := make([]dto.QuarterlyHiresResponse, 0, len(report))
	for _, row := range report {
		items = append(items, dto.QuarterlyHiresResponse{
			DepartmentID: row.DepartmentID,
			JobID:        row.JobID,
			Quarter:      row.Quarter,
			HiredCount:   row.HiredCount,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		HireDatetime: emp.HireDatetime,
		DepartmentID: emp.DepartmentID,
		JobID:        emp.JobID,
	}
}
