package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OperationKind identifies which entry function a mutating operation invokes.
type OperationKind string

const (
	OperationDonate   OperationKind = "DONATE"
	OperationCreate   OperationKind = "CREATE_CAMPAIGN"
	OperationWithdraw OperationKind = "WITHDRAW"
	OperationClose    OperationKind = "CLOSE_CAMPAIGN"
)

// OperationState is the lifecycle state of a mutating operation.
// idle -> processing -> {success, error}; terminal states revert to idle
// after the configured display window.
type OperationState string

const (
	StateIdle       OperationState = "idle"
	StateProcessing OperationState = "processing"
	StateSuccess    OperationState = "success"
	StateError      OperationState = "error"
)

// Terminal reports whether the state is a terminal display state.
func (s OperationState) Terminal() bool {
	return s == StateSuccess || s == StateError
}

// OperationStatus is the user-visible status of the most recent operation
// against one target.
type OperationStatus struct {
	Target    string         `json:"target"`
	Kind      OperationKind  `json:"kind,omitempty"`
	State     OperationState `json:"state"`
	Message   string         `json:"message,omitempty"`
	TxHash    string         `json:"tx_hash,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// OperationRecord is the durable history row written for every submitted
// operation. Persistence is best-effort; the ledger remains the source of
// truth.
type OperationRecord struct {
	ID        uuid.UUID      `json:"id"`
	Kind      OperationKind  `json:"kind"`
	Target    string         `json:"target"`
	Account   string         `json:"account"`
	Amount    *string        `json:"amount,omitempty"` // decimal string, nil for close
	TxHash    string         `json:"tx_hash,omitempty"`
	State     OperationState `json:"state"`
	ErrorMsg  string         `json:"error_message,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CampaignTarget is the single-flight lock key for an existing campaign.
func CampaignTarget(id int64) string {
	return fmt.Sprintf("campaign:%d", id)
}

// CreationTarget is the synthetic lock key used while an account is creating
// a new campaign (the campaign has no ledger id yet).
func CreationTarget(account string) string {
	return "create:" + account
}
