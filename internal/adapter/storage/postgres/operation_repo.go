package postgres

import (
	"context"
	"fmt"

	"github.com/heavensaji/fundtos/internal/core/domain"
)

// OperationRepo implements ports.OperationLogRepository.
//
// Schema:
//
//	CREATE TABLE operations (
//	    id            UUID PRIMARY KEY,
//	    kind          TEXT NOT NULL,
//	    target        TEXT NOT NULL,
//	    account       TEXT NOT NULL,
//	    amount        TEXT,
//	    tx_hash       TEXT NOT NULL DEFAULT '',
//	    state         TEXT NOT NULL,
//	    error_message TEXT NOT NULL DEFAULT '',
//	    created_at    TIMESTAMPTZ NOT NULL,
//	    updated_at    TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX operations_account_idx ON operations (account, created_at DESC);
type OperationRepo struct {
	pool Pool
}

// NewOperationRepo creates a new OperationRepo.
func NewOperationRepo(pool Pool) *OperationRepo {
	return &OperationRepo{pool: pool}
}

// Create inserts a history row for a newly accepted operation.
func (r *OperationRepo) Create(ctx context.Context, rec *domain.OperationRecord) error {
	query := `INSERT INTO operations (id, kind, target, account, amount, tx_hash, state, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Kind, rec.Target, rec.Account, rec.Amount,
		rec.TxHash, rec.State, rec.ErrorMsg, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// UpdateOutcome records the terminal state of an operation.
func (r *OperationRepo) UpdateOutcome(ctx context.Context, rec *domain.OperationRecord) error {
	query := `UPDATE operations SET state = $1, tx_hash = $2, error_message = $3, updated_at = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, rec.State, rec.TxHash, rec.ErrorMsg, rec.UpdatedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("update operation outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("operation not found: %s", rec.ID)
	}
	return nil
}

// ListByAccount returns the most recent operations submitted by an account.
func (r *OperationRepo) ListByAccount(ctx context.Context, account string, limit int) ([]domain.OperationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, kind, target, account, amount, tx_hash, state, error_message, created_at, updated_at
		FROM operations WHERE account = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, account, limit)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var records []domain.OperationRecord
	for rows.Next() {
		var rec domain.OperationRecord
		if err := rows.Scan(
			&rec.ID, &rec.Kind, &rec.Target, &rec.Account, &rec.Amount,
			&rec.TxHash, &rec.State, &rec.ErrorMsg, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return records, nil
}
