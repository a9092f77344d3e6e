package handler

import (
	"errors"
	"time"

	"github.com/heavensaji/fundtos/internal/adapter/http/dto"
	"github.com/heavensaji/fundtos/internal/core/domain"
	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/apperror"
	"github.com/heavensaji/fundtos/pkg/response"

	"github.com/gin-gonic/gin"
)

// CampaignHandler serves campaign listings.
type CampaignHandler struct {
	campaigns ports.CampaignService
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(campaigns ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// ListCampaigns handles GET /api/v1/campaigns?category=regular|seed_funding.
// Every call is a full re-query; a failed refresh serves the last good
// snapshot with a dismissible error instead of failing the request.
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	filter := ports.CampaignFilter{}
	if raw := c.Query("category"); raw != "" {
		category, err := dto.ParseCategory(raw)
		if err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		filter.Category = &category
	}

	h.refreshAndRespond(c, filter)
}

// OwnerCampaigns handles GET /api/v1/owners/:address/campaigns.
func (h *CampaignHandler) OwnerCampaigns(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		response.Error(c, apperror.Validation("owner address is required"))
		return
	}

	h.refreshAndRespond(c, ports.CampaignFilter{Owner: address})
}

func (h *CampaignHandler) refreshAndRespond(c *gin.Context, filter ports.CampaignFilter) {
	snap, err := h.campaigns.Refresh(c.Request.Context(), filter)

	resp := dto.SnapshotResponse{
		Active: dto.ToCampaignResponses(snap.Active),
		Closed: dto.ToCampaignResponses(snap.Closed),
	}
	if !snap.FetchedAt.IsZero() {
		resp.FetchedAt = snap.FetchedAt.Format(time.RFC3339)
	}
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			resp.FetchErr = appErr.Message
		} else {
			resp.FetchErr = "Failed to fetch campaigns"
		}
	}

	response.OK(c, resp)
}

// toStatusResponse converts an operation status for the API.
func toStatusResponse(st domain.OperationStatus) dto.StatusResponse {
	return dto.StatusResponse{
		Target:    st.Target,
		Kind:      string(st.Kind),
		State:     string(st.State),
		Message:   st.Message,
		TxHash:    st.TxHash,
		UpdatedAt: st.UpdatedAt.Format(time.RFC3339),
	}
}
