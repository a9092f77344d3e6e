package ports

import (
	"context"

	"github.com/heavensaji/fundtos/internal/core/domain"
)

// OperationLogRepository persists the history of submitted operations.
// Writes are best-effort: a failed insert must never fail the user flow.
type OperationLogRepository interface {
	Create(ctx context.Context, rec *domain.OperationRecord) error
	UpdateOutcome(ctx context.Context, rec *domain.OperationRecord) error
	ListByAccount(ctx context.Context, account string, limit int) ([]domain.OperationRecord, error)
}
