package worker

import (
	"github.com/spec-kit/event-service/internal/service"
)

// StartSubscribers registers the background event subscribers: the audit
// trail writer and the notification stubs.
func StartSubscribers(auditService *service.AuditService, notificationService *service.NotificationService) {
	if auditService != nil {
		auditService.RegisterHandlers()
	}
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
}
