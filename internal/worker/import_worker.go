package worker

import (
	"github.com/spec-kit/hiring-service/internal/service"
)

// StartImportWorker registers import notification handlers.
func StartImportWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
