package dto

import (
	"github.com/heavensaji/fundtos/internal/core/domain"
)

// DonateRequest is the request body for donating to a campaign.
// Amount is a decimal string to avoid float drift on fee math.
type DonateRequest struct {
	CampaignOwner string `json:"campaign_owner" binding:"required"`
	CampaignID    int64  `json:"campaign_id" binding:"min=0"`
	Amount        string `json:"amount" binding:"required"`
	Category      string `json:"category" binding:"required,oneof=regular seed_funding"`
}

// CreateCampaignRequest is the request body for campaign creation.
type CreateCampaignRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description" binding:"required,max=2000"`
	Link        string `json:"link" binding:"omitempty,safe_url,max=500"`
	Goal        int64  `json:"goal" binding:"required,gt=0"`
	Category    string `json:"category" binding:"required,oneof=regular seed_funding"`
}

// WithdrawRequest is the request body for an owner withdrawal. The amount is
// not validated against the campaign balance here; the ledger is
// authoritative.
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// OperationResponse is the response body for a finalized operation.
type OperationResponse struct {
	Target           string `json:"target"`
	TxHash           string `json:"tx_hash"`
	ChargeableAmount string `json:"chargeable_amount,omitempty"`
	ClearInput       bool   `json:"clear_input"`
}

// StatusResponse is the response body for an operation status query.
type StatusResponse struct {
	Target    string `json:"target"`
	Kind      string `json:"kind,omitempty"`
	State     string `json:"state"`
	Message   string `json:"message,omitempty"`
	TxHash    string `json:"tx_hash,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// CampaignResponse mirrors domain.Campaign with the API category encoding.
type CampaignResponse struct {
	ID          int64  `json:"id"`
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Goal        int64  `json:"goal"`
	Balance     int64  `json:"balance"`
	IsActive    bool   `json:"is_active"`
	Category    string `json:"category"`
}

// SnapshotResponse is the response body for campaign listings. FetchErr is
// set when the refresh failed and the partitions are the last good snapshot.
type SnapshotResponse struct {
	Active    []CampaignResponse `json:"active"`
	Closed    []CampaignResponse `json:"closed"`
	FetchedAt string             `json:"fetched_at,omitempty"`
	FetchErr  string             `json:"error,omitempty"`
}

// OperationRecordResponse is one row of the operation history.
type OperationRecordResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Target    string  `json:"target"`
	Amount    *string `json:"amount,omitempty"`
	TxHash    string  `json:"tx_hash,omitempty"`
	State     string  `json:"state"`
	ErrorMsg  string  `json:"error_message,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToCampaignResponse converts a domain campaign.
func ToCampaignResponse(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		Owner:       c.Owner,
		Title:       c.Title,
		Description: c.Description,
		Link:        c.Link,
		Goal:        c.Goal,
		Balance:     c.Balance,
		IsActive:    c.IsActive,
		Category:    c.Category.String(),
	}
}

// ToCampaignResponses converts a slice, never returning nil.
func ToCampaignResponses(cs []domain.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCampaignResponse(c))
	}
	return out
}
