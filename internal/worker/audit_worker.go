package worker

import (
	"github.com/spec-kit/identity-service/internal/service"
)

// StartAuditWorker subscribes the audit trail to the event dispatcher.
func StartAuditWorker(audit *service.AuditService) {
	if audit == nil {
		return
	}
	audit.RegisterHandlers()
}
