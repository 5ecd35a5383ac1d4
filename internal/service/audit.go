package service

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auditor appends privileged-action records. Writes are best-effort
// observability: a failed append is logged and counted, never surfaced to
// the operation that triggered it.
type Auditor struct {
	store  AuditStore
	logger *zap.Logger
}

func NewAuditor(store AuditStore) *Auditor {
	return &Auditor{store: store, logger: util.GetLogger()}
}

// Record appends one entry, assigning its id.
func (a *Auditor) Record(ctx context.Context, entry models.AuditEntry) {
	entry.ID = uuid.New().String()
	if err := a.store.AppendAudit(ctx, &entry); err != nil {
		util.AuditWritesFailed.Inc()
		a.logger.Error("Failed to write audit entry",
			zap.String("type", entry.Type),
			zap.String("actor_id", entry.ActorID),
			zap.Error(err))
	}
}

// Recent returns the newest entries, newest first.
func (a *Auditor) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return a.store.RecentAudit(ctx, limit)
}
