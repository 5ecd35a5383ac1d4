package store

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// AppendAudit writes an audit entry. The table is append-only; nothing in
// this package updates or deletes audit rows.
func (s *Store) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (id, type, actor_id, actor_email, target_id, target_email, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING timestamp`

	return s.db.GetContext(ctx, &entry.Timestamp, query,
		entry.ID, entry.Type, entry.ActorID, entry.ActorEmail,
		entry.TargetID, entry.TargetEmail, entry.Details)
}

// RecentAudit retrieves the most recent entries, newest first
func (s *Store) RecentAudit(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM audit_logs ORDER BY timestamp DESC LIMIT $1", limit)
	return entries, err
}
