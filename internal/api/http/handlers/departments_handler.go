package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hiring-service/internal/api/dto"
	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/service"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// DepartmentsHandler exposes department CRUD and CSV import endpoints.
type DepartmentsHandler struct {
	service  *service.DepartmentService
	importer *service.ImportService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departmentService *service.DepartmentService, importService *service.ImportService) *DepartmentsHandler {
	return &DepartmentsHandler{service: departmentService, importer: importService}
}

// Create POST /departments/.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" {
		return apperrors.NewValidationError("id and name required", nil)
	}

	dept, err := h.service.Create(c.Context(), &domain.Department{ID: req.ID, Name: req.Name})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": departmentResponse(dept)})
}

// Get GET /departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	dept, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(dept)})
}

// List GET /departments/?offset&limit.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.service.List(c.Context(), c.QueryInt("offset", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	items := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		items = append(items, departmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PUT /departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	dept, err := h.service.Update(c.Context(), id, service.DepartmentPatch{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(dept)})
}

// Delete DELETE /departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UploadCSV POST /departments/csv/.
func (h *DepartmentsHandler) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("csv file required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return apperrors.NewImportError("cannot read uploaded file", err)
	}
	defer src.Close()

	summary, err := h.importer.ImportDepartments(c.Context(), src)
	if err != nil {
		return err
	}
	return c.JSON(importSummaryResponse(summary))
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{ID: dept.ID, Name: dept.Name}
}
