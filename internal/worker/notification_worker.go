package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/service"
)

// StartNotificationWorker subscribes the notification service to the event
// stream. Safe to call with a nil service when notifications are disabled.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		logger.Info("notification worker disabled")
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
