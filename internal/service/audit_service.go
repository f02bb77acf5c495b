package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/identity-service/internal/events"
	"github.com/spec-kit/identity-service/internal/observability"
)

// AuditService writes authentication events to the structured log and counts them.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventLoginSucceeded,
		events.EventLoginFailed,
		events.EventTokenRevoked,
		events.EventUserRegistered,
		events.EventUserStatusChanged,
		events.EventUserUpdated,
		events.EventCompanyRegistered,
	} {
		a.dispatcher.Subscribe(t, a.handle)
	}
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	a.metrics.RecordAuthEvent(string(event.Type))

	fields := []zap.Field{
		zap.String("event_type", string(event.Type)),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.SubjectID != "" {
		fields = append(fields, zap.String("subject_id", event.SubjectID))
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}

	if event.Type == events.EventLoginFailed {
		a.logger.Warn("login failed", fields...)
		return nil
	}
	a.logger.Info(string(event.Type), fields...)
	return nil
}
