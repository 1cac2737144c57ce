package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hiring-service/internal/api/dto"
	"github.com/spec-kit/hiring-service/internal/service"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
	}
	return val, nil
}

func importSummaryResponse(summary service.ImportSummary) dto.ImportSummaryResponse {
	return dto.ImportSummaryResponse{
		Status:            "success",
		SuccessfulImports: strconv.Itoa(summary.Successful),
		FailedImports:     strconv.Itoa(summary.Failed),
	}
}
