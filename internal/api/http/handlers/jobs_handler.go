package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hiring-service/internal/api/dto"
	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/service"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// JobsHandler exposes job CRUD and CSV import endpoints.
type JobsHandler struct {
	service  *service.JobService
	importer *service.ImportService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService, importService *service.ImportService) *JobsHandler {
	return &JobsHandler{service: jobService, importer: importService}
}

// Create POST /jobs/.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	job, err := h.service.Create(c.Context(), &domain.Job{ID: req.ID, Title: req.Title})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobResponse(job)})
}

// Get GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	job, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

// List GET /jobs/?offset&limit.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context(), c.QueryInt("offset", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PUT /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Update(c.Context(), id, service.JobPatch{Title: req.Title})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

// Delete DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UploadCSV POST /jobs/csv/.
func (h *JobsHandler) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("csv file required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return apperrors.NewImportError("cannot read uploaded file", err)
	}
	defer src.Close()

	summary, err := h.importer.ImportJobs(c.Context(), src)
	if err != nil {
		return err
	}
	return c.JSON(importSummaryResponse(summary))
}

func jobResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{ID: job.ID, Title: job.Title}
}
