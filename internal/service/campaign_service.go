package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heavensaji/fundtos/internal/core/domain"
	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/apperror"

	"github.com/rs/zerolog"
)

// Ledger view function names.
const (
	FnAllCampaigns   = "get_all_campaign_details"
	FnOwnerCampaigns = "get_campaigns"
)

// CampaignServiceImpl implements ports.CampaignService over a LedgerGateway.
//
// Every refresh is a full re-query; the only cache is the last successful
// snapshot per filter. Out-of-order resolutions are discarded via a
// monotonic dispatch sequence so a stale response never overwrites a newer
// snapshot.
type CampaignServiceImpl struct {
	gateway  ports.LedgerGateway
	fnAll    string // fully qualified get_all_campaign_details
	fnOwner  string // fully qualified get_campaigns
	log      zerolog.Logger
	dispatch atomic.Uint64

	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
}

// NewCampaignService creates a CampaignServiceImpl. fnAll and fnOwner are
// the fully qualified view function identifiers.
func NewCampaignService(gateway ports.LedgerGateway, fnAll, fnOwner string, log zerolog.Logger) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		gateway:   gateway,
		fnAll:     fnAll,
		fnOwner:   fnOwner,
		log:       log,
		snapshots: make(map[string]domain.Snapshot),
	}
}

// Refresh implements ports.CampaignService.
func (s *CampaignServiceImpl) Refresh(ctx context.Context, filter ports.CampaignFilter) (domain.Snapshot, error) {
	seq := s.dispatch.Add(1)

	fn := s.fnAll
	args := []any{}
	if filter.Owner != "" {
		fn = s.fnOwner
		args = []any{filter.Owner}
	}

	result, err := s.gateway.Query(ctx, fn, nil, args)
	if err != nil {
		s.log.Warn().Err(err).Str("function", fn).Msg("campaign refresh failed")
		return s.lastGood(filter), apperror.ErrFetchUnavailable(err)
	}

	campaigns, err := normalizeCampaigns(result, filter)
	if err != nil {
		s.log.Warn().Err(err).Str("function", fn).Msg("campaign payload rejected")
		return s.lastGood(filter), apperror.ErrFetchMalformed(err)
	}

	active, closed := domain.Partition(campaigns)
	snap := domain.Snapshot{
		Active:    active,
		Closed:    closed,
		FetchedAt: time.Now().UTC(),
		Seq:       seq,
	}

	key := filterKey(filter)
	s.mu.Lock()
	defer s.mu.Unlock()
	if held, ok := s.snapshots[key]; ok && held.Seq > seq {
		// A later-dispatched refresh already resolved; this result is stale.
		s.log.Debug().Uint64("seq", seq).Uint64("held", held.Seq).Msg("discarding stale refresh resolution")
		return held, nil
	}
	s.snapshots[key] = snap

	s.log.Debug().
		Int("active", len(active)).
		Int("closed", len(closed)).
		Str("function", fn).
		Msg("campaign snapshot replaced")

	return snap, nil
}

// Snapshot implements ports.CampaignService.
func (s *CampaignServiceImpl) Snapshot(filter ports.CampaignFilter) (domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[filterKey(filter)]
	return snap, ok
}

func (s *CampaignServiceImpl) lastGood(filter ports.CampaignFilter) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[filterKey(filter)]
}

func filterKey(filter ports.CampaignFilter) string {
	key := "all"
	if filter.Owner != "" {
		key = "owner:" + filter.Owner
	}
	if filter.Category != nil {
		key += ":" + filter.Category.String()
	}
	return key
}

// normalizeCampaigns converts the raw view function result into typed
// Campaign records, applying the category filter. The result's first element
// must be the payload array; anything else is a malformed response.
func normalizeCampaigns(result []any, filter ports.CampaignFilter) ([]domain.Campaign, error) {
	if len(result) == 0 {
		return nil, fmt.Errorf("empty view result")
	}
	payload, ok := result[0].([]any)
	if !ok {
		return nil, fmt.Errorf("view result is not an array (got %T)", result[0])
	}

	campaigns := make([]domain.Campaign, 0, len(payload))
	for i, raw := range payload {
		fields, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("campaign %d is not an object (got %T)", i, raw)
		}

		c, err := normalizeCampaign(fields)
		if err != nil {
			return nil, fmt.Errorf("campaign %d: %w", i, err)
		}
		if c.Owner == "" {
			// Owner-scoped view omits the owner field.
			c.Owner = filter.Owner
		}
		if filter.Category != nil && c.Category != *filter.Category {
			continue
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

func normalizeCampaign(fields map[string]any) (domain.Campaign, error) {
	id, err := intField(fields, "id")
	if err != nil {
		return domain.Campaign{}, err
	}
	goal, err := intField(fields, "goal")
	if err != nil {
		return domain.Campaign{}, err
	}
	balance, err := intField(fields, "balance")
	if err != nil {
		return domain.Campaign{}, err
	}
	rawCategory, err := intField(fields, "campaign_type")
	if err != nil {
		return domain.Campaign{}, err
	}
	category := domain.CampaignCategory(rawCategory)
	if !category.Valid() {
		return domain.Campaign{}, fmt.Errorf("unknown campaign_type %d", rawCategory)
	}
	isActive, ok := fields["is_active"].(bool)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("is_active is not a bool (got %T)", fields["is_active"])
	}

	return domain.Campaign{
		ID:          id,
		Owner:       stringField(fields, "owner"),
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		Link:        stringField(fields, "link"),
		Goal:        goal,
		Balance:     balance,
		IsActive:    isActive,
		Category:    category,
	}, nil
}

// intField parses a numeric field the ledger encodes as a base-10 string.
func intField(fields map[string]any, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", name, err)
		}
		return n, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %q has unexpected type %T", name, raw)
	}
}

func stringField(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}
