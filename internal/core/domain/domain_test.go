package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition_DisjointAndComplete(t *testing.T) {
	campaigns := []Campaign{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 3, IsActive: true},
		{ID: 4, IsActive: false},
		{ID: 5, IsActive: true},
	}

	active, closed := Partition(campaigns)

	assert.Len(t, active, 3)
	assert.Len(t, closed, 2)
	assert.Equal(t, len(campaigns), len(active)+len(closed))

	seen := map[int64]int{}
	for _, c := range active {
		assert.True(t, c.IsActive)
		seen[c.ID]++
	}
	for _, c := range closed {
		assert.False(t, c.IsActive)
		seen[c.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "campaign %d appears in exactly one partition", id)
	}
}

func TestPartition_PreservesOrder(t *testing.T) {
	campaigns := []Campaign{
		{ID: 9, IsActive: true},
		{ID: 3, IsActive: true},
		{ID: 7, IsActive: false},
		{ID: 1, IsActive: true},
	}

	active, closed := Partition(campaigns)

	assert.Equal(t, []int64{9, 3, 1}, ids(active))
	assert.Equal(t, []int64{7}, ids(closed))
}

func TestPartition_Empty(t *testing.T) {
	active, closed := Partition(nil)
	assert.Empty(t, active)
	assert.Empty(t, closed)
	assert.NotNil(t, active)
	assert.NotNil(t, closed)
}

func TestCampaignCategory(t *testing.T) {
	assert.Equal(t, "regular", CategoryRegular.String())
	assert.Equal(t, "seed_funding", CategorySeedFunding.String())
	assert.True(t, CategoryRegular.Valid())
	assert.True(t, CategorySeedFunding.Valid())
	assert.False(t, CampaignCategory(2).Valid())
}

func TestOperationState_Terminal(t *testing.T) {
	assert.False(t, StateIdle.Terminal())
	assert.False(t, StateProcessing.Terminal())
	assert.True(t, StateSuccess.Terminal())
	assert.True(t, StateError.Terminal())
}

func TestTargets(t *testing.T) {
	assert.Equal(t, "campaign:42", CampaignTarget(42))
	assert.Equal(t, "create:0xabc", CreationTarget("0xabc"))
	assert.NotEqual(t, CampaignTarget(1), CreationTarget("1"))
}

func ids(cs []Campaign) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}
