package domain

import "time"

// CampaignCategory selects the fee treatment of a campaign.
// The value matches the on-chain encoding (0 = regular, 1 = seed funding).
type CampaignCategory int

const (
	CategoryRegular     CampaignCategory = 0
	CategorySeedFunding CampaignCategory = 1
)

// String returns the API representation of the category.
func (c CampaignCategory) String() string {
	if c == CategorySeedFunding {
		return "seed_funding"
	}
	return "regular"
}

// Valid reports whether the category is one of the two known encodings.
func (c CampaignCategory) Valid() bool {
	return c == CategoryRegular || c == CategorySeedFunding
}

// Campaign is the local view of one crowdfunding campaign as last read from
// the ledger. It is never mutated locally; a new value replaces it on refresh.
type Campaign struct {
	ID          int64            `json:"id"`
	Owner       string           `json:"owner"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Link        string           `json:"link"`
	Goal        int64            `json:"goal"`
	Balance     int64            `json:"balance"`
	IsActive    bool             `json:"is_active"`
	Category    CampaignCategory `json:"category"`
}

// Snapshot holds the last successfully fetched campaign partitions.
// Replacement is atomic: consumers always see a complete pair.
type Snapshot struct {
	Active    []Campaign `json:"active"`
	Closed    []Campaign `json:"closed"`
	FetchedAt time.Time  `json:"fetched_at"`
	// Seq is the dispatch sequence number of the refresh that produced this
	// snapshot. Used to discard out-of-order resolutions.
	Seq uint64 `json:"-"`
}

// Partition splits campaigns into active and closed slices, preserving the
// ledger's iteration order. Every campaign lands in exactly one partition.
func Partition(campaigns []Campaign) (active, closed []Campaign) {
	active = make([]Campaign, 0, len(campaigns))
	closed = make([]Campaign, 0)
	for _, c := range campaigns {
		if c.IsActive {
			active = append(active, c)
		} else {
			closed = append(closed, c)
		}
	}
	return active, closed
}
