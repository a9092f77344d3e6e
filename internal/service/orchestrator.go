package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/heavensaji/fundtos/internal/core/domain"
	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger entry function names.
const (
	FnDonate         = "donate"
	FnCreateCampaign = "create_campaign"
	FnWithdrawFunds  = "withdraw_funds"
	FnCloseCampaign  = "close_campaign"
)

// DefaultStatusResetAfter is the terminal status display window.
const DefaultStatusResetAfter = 3 * time.Second

var errOrchestratorClosed = errors.New("orchestrator is shut down")

// OrchestratorConfig holds the fully qualified entry function identifiers
// and the status display window.
type OrchestratorConfig struct {
	DonateFn   string
	CreateFn   string
	WithdrawFn string
	CloseFn    string
	ResetAfter time.Duration
}

// OrchestratorImpl implements ports.Orchestrator.
//
// It enforces single-flight per target: while an operation is processing for
// a target (or showing its success window), a second request for the same
// target is rejected rather than queued. Distinct targets proceed
// independently. Terminal statuses revert to idle after ResetAfter via
// timers owned by the orchestrator and cancelled on Close.
type OrchestratorImpl struct {
	gateway   ports.LedgerGateway
	campaigns ports.CampaignService
	fees      FeeCalculator
	opLog     ports.OperationLogRepository // nil = history disabled
	cfg       OrchestratorConfig
	log       zerolog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
	statuses map[string]domain.OperationStatus
	timers   map[string]*time.Timer
	closed   bool
}

// NewOrchestrator creates an OrchestratorImpl.
func NewOrchestrator(
	gateway ports.LedgerGateway,
	campaigns ports.CampaignService,
	fees FeeCalculator,
	opLog ports.OperationLogRepository,
	cfg OrchestratorConfig,
	log zerolog.Logger,
) *OrchestratorImpl {
	if cfg.ResetAfter <= 0 {
		cfg.ResetAfter = DefaultStatusResetAfter
	}
	return &OrchestratorImpl{
		gateway:   gateway,
		campaigns: campaigns,
		fees:      fees,
		opLog:     opLog,
		cfg:       cfg,
		log:       log,
		inFlight:  make(map[string]struct{}),
		statuses:  make(map[string]domain.OperationStatus),
		timers:    make(map[string]*time.Timer),
	}
}

// operation is one validated mutating request ready to run.
type operation struct {
	target     string
	kind       domain.OperationKind
	identity   ports.Identity
	amount     *decimal.Decimal // submitted amount, nil for close
	entry      ports.EntryFunction
	refresh    ports.CampaignFilter
	clearInput bool
}

// Donate implements ports.Orchestrator.
func (o *OrchestratorImpl) Donate(ctx context.Context, req ports.DonationRequest) (*ports.OperationResult, error) {
	if !req.Identity.Connected() {
		return nil, apperror.ErrWalletNotConnected()
	}
	if req.Owner == "" {
		return nil, apperror.Validation("campaign owner is required")
	}
	if req.CampaignID < 0 {
		return nil, apperror.Validation("campaign id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Category.Valid() {
		return nil, apperror.Validation("unknown campaign category")
	}

	category := o.resolveCategory(req.CampaignID, req.Category)
	chargeable := o.fees.ChargeableAmount(req.Amount, category)

	return o.run(ctx, operation{
		target:   domain.CampaignTarget(req.CampaignID),
		kind:     domain.OperationDonate,
		identity: req.Identity,
		amount:   &chargeable,
		entry: ports.EntryFunction{
			FunctionID: o.cfg.DonateFn,
			TypeArgs:   []string{},
			Args: []any{
				req.Owner,
				strconv.FormatInt(req.CampaignID, 10),
				chargeable.String(),
			},
		},
		refresh:    ports.CampaignFilter{Category: &category},
		clearInput: true,
	})
}

// resolveCategory returns the campaign's category as last read from the
// ledger. The client declares one too, but for a campaign present in the
// held snapshot the snapshot wins: a request that mislabels a seed funding
// campaign as regular must not change its fee treatment. The declared value
// is used only when the campaign is not in the snapshot.
func (o *OrchestratorImpl) resolveCategory(campaignID int64, declared domain.CampaignCategory) domain.CampaignCategory {
	snap, ok := o.campaigns.Snapshot(ports.CampaignFilter{})
	if !ok {
		return declared
	}
	for _, list := range [][]domain.Campaign{snap.Active, snap.Closed} {
		for _, c := range list {
			if c.ID == campaignID {
				return c.Category
			}
		}
	}
	return declared
}

// CreateCampaign implements ports.Orchestrator.
func (o *OrchestratorImpl) CreateCampaign(ctx context.Context, req ports.CreateCampaignRequest) (*ports.OperationResult, error) {
	if !req.Identity.Connected() {
		return nil, apperror.ErrWalletNotConnected()
	}
	if req.Title == "" {
		return nil, apperror.Validation("title is required")
	}
	if req.Description == "" {
		return nil, apperror.Validation("description is required")
	}
	if req.Goal <= 0 {
		return nil, apperror.Validation("goal must be a positive integer")
	}
	if !req.Category.Valid() {
		return nil, apperror.Validation("unknown campaign category")
	}

	return o.run(ctx, operation{
		target:   domain.CreationTarget(req.Identity.Address),
		kind:     domain.OperationCreate,
		identity: req.Identity,
		entry: ports.EntryFunction{
			FunctionID: o.cfg.CreateFn,
			TypeArgs:   []string{},
			Args: []any{
				req.Title,
				req.Description,
				req.Link,
				strconv.FormatInt(req.Goal, 10),
				strconv.Itoa(int(req.Category)),
			},
		},
		refresh:    ports.CampaignFilter{Owner: req.Identity.Address},
		clearInput: true,
	})
}

// Withdraw implements ports.Orchestrator. The amount is deliberately not
// checked against the local campaign balance: the ledger is authoritative
// and rejects over-withdrawal.
func (o *OrchestratorImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) (*ports.OperationResult, error) {
	if !req.Identity.Connected() {
		return nil, apperror.ErrWalletNotConnected()
	}
	if req.CampaignID < 0 {
		return nil, apperror.Validation("campaign id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	amount := req.Amount
	return o.run(ctx, operation{
		target:   domain.CampaignTarget(req.CampaignID),
		kind:     domain.OperationWithdraw,
		identity: req.Identity,
		amount:   &amount,
		entry: ports.EntryFunction{
			FunctionID: o.cfg.WithdrawFn,
			TypeArgs:   []string{},
			Args: []any{
				strconv.FormatInt(req.CampaignID, 10),
				amount.String(),
			},
		},
		refresh:    ports.CampaignFilter{Owner: req.Identity.Address},
		clearInput: true,
	})
}

// CloseCampaign implements ports.Orchestrator. Closing is one-way; once
// finalized the campaign never returns to the active partition.
func (o *OrchestratorImpl) CloseCampaign(ctx context.Context, req ports.CloseCampaignRequest) (*ports.OperationResult, error) {
	if !req.Identity.Connected() {
		return nil, apperror.ErrWalletNotConnected()
	}
	if req.CampaignID < 0 {
		return nil, apperror.Validation("campaign id is required")
	}

	return o.run(ctx, operation{
		target:   domain.CampaignTarget(req.CampaignID),
		kind:     domain.OperationClose,
		identity: req.Identity,
		entry: ports.EntryFunction{
			FunctionID: o.cfg.CloseFn,
			TypeArgs:   []string{},
			Args:       []any{strconv.FormatInt(req.CampaignID, 10)},
		},
		refresh: ports.CampaignFilter{Owner: req.Identity.Address},
	})
}

// Status implements ports.Orchestrator.
func (o *OrchestratorImpl) Status(target string) domain.OperationStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	if st, ok := o.statuses[target]; ok {
		return st
	}
	return domain.OperationStatus{Target: target, State: domain.StateIdle, UpdatedAt: time.Now().UTC()}
}

// Close cancels all pending status reset timers. In-flight submissions are
// not cancelled; they run to their terminal state.
func (o *OrchestratorImpl) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	for target, timer := range o.timers {
		timer.Stop()
		delete(o.timers, target)
	}
}

// run drives one validated operation through the lifecycle:
// acquire lock -> processing -> submit -> await finality ->
// success (refresh, hold lock for the display window) or
// error (release lock immediately, show error for the display window).
func (o *OrchestratorImpl) run(ctx context.Context, op operation) (*ports.OperationResult, error) {
	if err := o.acquire(op); err != nil {
		return nil, err
	}

	rec := o.recordStart(ctx, op)

	receipt, err := o.gateway.Submit(ctx, op.identity, op.entry)
	if err != nil {
		appErr := apperror.ErrSubmission(err)
		o.fail(ctx, op, rec, "", appErr)
		return nil, appErr
	}

	if err := o.gateway.AwaitFinality(ctx, receipt.Hash); err != nil {
		appErr := apperror.ErrFinality(err)
		o.fail(ctx, op, rec, receipt.Hash, appErr)
		return nil, appErr
	}

	o.succeed(ctx, op, rec, receipt.Hash)

	// Read-your-writes: the refresh is ordered after the finality signal.
	// A failed refresh does not fail the operation; the ledger already
	// applied it and the stale snapshot is surfaced separately.
	if _, err := o.campaigns.Refresh(ctx, op.refresh); err != nil {
		o.log.Warn().Err(err).Str("target", op.target).Msg("post-operation refresh failed")
	}

	result := &ports.OperationResult{
		Target:     op.target,
		TxHash:     receipt.Hash,
		ClearInput: op.clearInput,
	}
	if op.amount != nil {
		result.ChargeableAmount = *op.amount
	}
	return result, nil
}

// acquire takes the single-flight lock for the target and transitions the
// status to processing. A target already locked (processing, or success
// still in its display window) rejects the request without queueing.
func (o *OrchestratorImpl) acquire(op operation) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return apperror.InternalError(errOrchestratorClosed)
	}
	if _, busy := o.inFlight[op.target]; busy {
		return apperror.ErrConcurrentOperation(op.target)
	}

	// A previous error status may still be displaying; a retry overwrites it.
	if timer, ok := o.timers[op.target]; ok {
		timer.Stop()
		delete(o.timers, op.target)
	}

	o.inFlight[op.target] = struct{}{}
	o.statuses[op.target] = domain.OperationStatus{
		Target:    op.target,
		Kind:      op.kind,
		State:     domain.StateProcessing,
		UpdatedAt: time.Now().UTC(),
	}

	o.log.Info().
		Str("target", op.target).
		Str("kind", string(op.kind)).
		Str("account", op.identity.Address).
		Msg("operation processing")
	return nil
}

func (o *OrchestratorImpl) succeed(ctx context.Context, op operation, rec *domain.OperationRecord, txHash string) {
	o.mu.Lock()
	o.statuses[op.target] = domain.OperationStatus{
		Target:    op.target,
		Kind:      op.kind,
		State:     domain.StateSuccess,
		TxHash:    txHash,
		UpdatedAt: time.Now().UTC(),
	}
	// The lock is held through the display window; scheduleReset releases it.
	o.scheduleReset(op.target, true)
	o.mu.Unlock()

	o.recordOutcome(ctx, rec, domain.StateSuccess, txHash, "")

	o.log.Info().
		Str("target", op.target).
		Str("kind", string(op.kind)).
		Str("tx_hash", txHash).
		Msg("operation finalized")
}

func (o *OrchestratorImpl) fail(ctx context.Context, op operation, rec *domain.OperationRecord, txHash string, appErr *apperror.AppError) {
	message := appErr.Message
	if appErr.Err != nil {
		message = appErr.Err.Error()
	}

	o.mu.Lock()
	o.statuses[op.target] = domain.OperationStatus{
		Target:    op.target,
		Kind:      op.kind,
		State:     domain.StateError,
		Message:   message,
		TxHash:    txHash,
		UpdatedAt: time.Now().UTC(),
	}
	// Ledger state is presumed unchanged: no refresh, and the lock releases
	// immediately so the user can retry without waiting out the display
	// window.
	delete(o.inFlight, op.target)
	o.scheduleReset(op.target, false)
	o.mu.Unlock()

	o.recordOutcome(ctx, rec, domain.StateError, txHash, message)

	o.log.Warn().
		Str("target", op.target).
		Str("kind", string(op.kind)).
		Str("error", message).
		Msg("operation failed")
}

// scheduleReset arms the timer that reverts a terminal status to idle after
// the display window. Caller must hold o.mu.
func (o *OrchestratorImpl) scheduleReset(target string, releaseLock bool) {
	if o.closed {
		return
	}
	if timer, ok := o.timers[target]; ok {
		timer.Stop()
	}
	o.timers[target] = time.AfterFunc(o.cfg.ResetAfter, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if st, ok := o.statuses[target]; !ok || !st.State.Terminal() {
			return
		}
		delete(o.statuses, target)
		delete(o.timers, target)
		if releaseLock {
			delete(o.inFlight, target)
		}
	})
}

// recordStart writes the history row for a newly accepted operation.
// Best-effort: failures are logged and ignored.
func (o *OrchestratorImpl) recordStart(ctx context.Context, op operation) *domain.OperationRecord {
	if o.opLog == nil {
		return nil
	}
	now := time.Now().UTC()
	rec := &domain.OperationRecord{
		ID:        uuid.New(),
		Kind:      op.kind,
		Target:    op.target,
		Account:   op.identity.Address,
		State:     domain.StateProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if op.amount != nil {
		s := op.amount.String()
		rec.Amount = &s
	}
	if err := o.opLog.Create(ctx, rec); err != nil {
		o.log.Warn().Err(err).Str("target", op.target).Msg("operation history insert failed")
	}
	return rec
}

func (o *OrchestratorImpl) recordOutcome(ctx context.Context, rec *domain.OperationRecord, state domain.OperationState, txHash, errMsg string) {
	if o.opLog == nil || rec == nil {
		return
	}
	rec.State = state
	rec.TxHash = txHash
	rec.ErrorMsg = errMsg
	rec.UpdatedAt = time.Now().UTC()
	if err := o.opLog.UpdateOutcome(ctx, rec); err != nil {
		o.log.Warn().Err(err).Str("target", rec.Target).Msg("operation history update failed")
	}
}
