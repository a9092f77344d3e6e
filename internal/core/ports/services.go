package ports

import (
	"context"

	"github.com/heavensaji/fundtos/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CampaignFilter scopes a refresh to one owner and/or one category.
// Zero value means "all campaigns".
type CampaignFilter struct {
	Owner    string
	Category *domain.CampaignCategory
}

// CampaignService retrieves campaign state from the ledger and holds the
// last successful snapshot.
type CampaignService interface {
	// Refresh re-queries the ledger and replaces the held snapshot. On
	// failure the previous snapshot is retained and a FetchError is
	// returned; the caller decides how to surface it.
	Refresh(ctx context.Context, filter CampaignFilter) (domain.Snapshot, error)
	// Snapshot returns the last successfully applied snapshot for the
	// filter without touching the ledger.
	Snapshot(filter CampaignFilter) (domain.Snapshot, bool)
}

// DonationRequest is one user donation submission.
type DonationRequest struct {
	Identity   Identity
	Owner      string
	CampaignID int64
	Amount     decimal.Decimal
	// Category is the client-declared fee category. For a campaign present
	// in the held snapshot the snapshot's category takes precedence, so a
	// mislabeled request cannot skip the seed funding surcharge.
	Category domain.CampaignCategory
}

// CreateCampaignRequest holds validated input for campaign creation.
type CreateCampaignRequest struct {
	Identity    Identity
	Title       string
	Description string
	Link        string
	Goal        int64
	Category    domain.CampaignCategory
}

// WithdrawRequest holds input for an owner withdrawal. Amount is not checked
// against the campaign balance locally; the ledger rejects over-withdrawal.
type WithdrawRequest struct {
	Identity   Identity
	CampaignID int64
	Amount     decimal.Decimal
}

// CloseCampaignRequest holds input for the one-way close operation.
type CloseCampaignRequest struct {
	Identity   Identity
	CampaignID int64
}

// OperationResult is returned once an operation reached a successful
// terminal state.
type OperationResult struct {
	Target string
	TxHash string
	// ChargeableAmount is the total submitted to the ledger (base + fee for
	// seed funding donations). Zero for operations without an amount.
	ChargeableAmount decimal.Decimal
	// ClearInput tells the presentation layer to reset the entered amount.
	ClearInput bool
}

// Orchestrator drives mutating operations through the
// processing/success/error lifecycle with per-target single-flight.
type Orchestrator interface {
	Donate(ctx context.Context, req DonationRequest) (*OperationResult, error)
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*OperationResult, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*OperationResult, error)
	CloseCampaign(ctx context.Context, req CloseCampaignRequest) (*OperationResult, error)
	// Status returns the current status for a target ("idle" if none).
	Status(target string) domain.OperationStatus
}
