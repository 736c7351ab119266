package services

import (
	"context"
	"time"

	"cafestaff/entity"

	"go.uber.org/zap"
)

// AuditRecorder persists one audit entry.
type AuditRecorder interface {
	Record(ctx context.Context, e *entity.AuditEntry) error
}

// AuditService fans an entry out to every configured recorder. Failures are
// logged and swallowed so auditing never breaks a request.
type AuditService struct {
	recorders []AuditRecorder
	log       *zap.Logger
}

func NewAuditService(log *zap.Logger, recorders ...AuditRecorder) *AuditService {
	return &AuditService{recorders: recorders, log: log.Named("audit")}
}

func (s *AuditService) Record(ctx context.Context, e entity.AuditEntry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	for _, r := range s.recorders {
		entry := e
		if err := r.Record(ctx, &entry); err != nil {
			s.log.Warn("audit write failed",
				zap.String("action", e.Action),
				zap.String("resource", e.Resource),
				zap.Error(err))
		}
	}
}
