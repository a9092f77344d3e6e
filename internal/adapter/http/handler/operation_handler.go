package handler

import (
	"strconv"
	"time"

	"github.com/heavensaji/fundtos/internal/adapter/http/dto"
	"github.com/heavensaji/fundtos/internal/adapter/http/middleware"
	"github.com/heavensaji/fundtos/internal/core/domain"
	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/apperror"
	"github.com/heavensaji/fundtos/pkg/response"

	"github.com/gin-gonic/gin"
)

// OperationHandler serves the mutating campaign operations and their status.
type OperationHandler struct {
	orch  ports.Orchestrator
	opLog ports.OperationLogRepository // nil = history disabled
}

// NewOperationHandler creates an OperationHandler.
func NewOperationHandler(orch ports.Orchestrator, opLog ports.OperationLogRepository) *OperationHandler {
	return &OperationHandler{orch: orch, opLog: opLog}
}

// Donate handles POST /api/v1/donations.
func (h *OperationHandler) Donate(c *gin.Context) {
	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	category, err := dto.ParseCategory(req.Category)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orch.Donate(c.Request.Context(), ports.DonationRequest{
		Identity:   middleware.Identity(c),
		Owner:      req.CampaignOwner,
		CampaignID: req.CampaignID,
		Amount:     amount,
		Category:   category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toOperationResponse(result))
}

// CreateCampaign handles POST /api/v1/campaigns.
func (h *OperationHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	category, err := dto.ParseCategory(req.Category)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orch.CreateCampaign(c.Request.Context(), ports.CreateCampaignRequest{
		Identity:    middleware.Identity(c),
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Goal:        req.Goal,
		Category:    category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toOperationResponse(result))
}

// Withdraw handles POST /api/v1/campaigns/:id/withdraw.
func (h *OperationHandler) Withdraw(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orch.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		Identity:   middleware.Identity(c),
		CampaignID: campaignID,
		Amount:     amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toOperationResponse(result))
}

// CloseCampaign handles POST /api/v1/campaigns/:id/close.
func (h *OperationHandler) CloseCampaign(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	result, err := h.orch.CloseCampaign(c.Request.Context(), ports.CloseCampaignRequest{
		Identity:   middleware.Identity(c),
		CampaignID: campaignID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toOperationResponse(result))
}

// CampaignStatus handles GET /api/v1/campaigns/:id/status.
func (h *OperationHandler) CampaignStatus(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}
	st := h.orch.Status(domain.CampaignTarget(campaignID))
	response.OK(c, toStatusResponse(st))
}

// CreationStatus handles GET /api/v1/operations/creation-status for the
// requesting wallet's synthetic creation target.
func (h *OperationHandler) CreationStatus(c *gin.Context) {
	identity := middleware.Identity(c)
	st := h.orch.Status(domain.CreationTarget(identity.Address))
	response.OK(c, toStatusResponse(st))
}

// History handles GET /api/v1/operations?limit=. Scoped to the requesting
// wallet.
func (h *OperationHandler) History(c *gin.Context) {
	if h.opLog == nil {
		response.Error(c, apperror.ErrNotFound("operation history"))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	identity := middleware.Identity(c)
	records, err := h.opLog.ListByAccount(c.Request.Context(), identity.Address, limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.OperationRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.OperationRecordResponse{
			ID:        rec.ID.String(),
			Kind:      string(rec.Kind),
			Target:    rec.Target,
			Amount:    rec.Amount,
			TxHash:    rec.TxHash,
			State:     string(rec.State),
			ErrorMsg:  rec.ErrorMsg,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		})
	}
	response.OK(c, out)
}

func campaignIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		response.Error(c, apperror.Validation("campaign id must be a non-negative integer"))
		return 0, false
	}
	return id, true
}

func toOperationResponse(result *ports.OperationResult) dto.OperationResponse {
	resp := dto.OperationResponse{
		Target:     result.Target,
		TxHash:     result.TxHash,
		ClearInput: result.ClearInput,
	}
	if !result.ChargeableAmount.IsZero() {
		resp.ChargeableAmount = result.ChargeableAmount.String()
	}
	return resp
}
