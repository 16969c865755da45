package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tumbler() Product {
	return Product{ID: "1", Name: "Bamboo Tumbler", Price: 250, Image: "/img/tumbler.jpg"}
}

func TestAddMergesSameProductAndColor(t *testing.T) {
	c := New()

	c.Add(tumbler(), 2, "Pink")
	c.Add(tumbler(), 3, "Pink")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Pink", items[0].Color)
}

func TestAddDifferentColorAppendsLine(t *testing.T) {
	c := New()

	c.Add(tumbler(), 1, "Pink")
	c.Add(tumbler(), 1, "Green")

	assert.Equal(t, 2, c.Len())
}

func TestAddClampsQuantityToOne(t *testing.T) {
	c := New()

	c.Add(tumbler(), 0, "")
	c.Add(tumbler(), -3, "")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(tumbler(), 1, "Pink")

	c.Remove("1", "Pink")
	assert.Equal(t, 0, c.Len())

	// removing a missing line is a no-op
	c.Remove("1", "Pink")
	assert.Equal(t, 0, c.Len())
}

func TestRemoveMatchesColorExactly(t *testing.T) {
	c := New()
	c.Add(tumbler(), 1, "Pink")
	c.Add(tumbler(), 1, "Green")

	c.Remove("1", "Pink")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Green", items[0].Color)
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New()
	c.Add(tumbler(), 2, "")

	c.SetQuantity("1", "", 7)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	c := New()
	c.Add(tumbler(), 2, "Pink")

	c.SetQuantity("1", "Pink", 0)

	assert.Equal(t, 0, c.Len())
}

func TestTotalRecomputedAfterAnySequence(t *testing.T) {
	c := New()

	c.Add(tumbler(), 2, "Pink")
	assert.InDelta(t, 500, c.Total(), 1e-9)

	c.Add(Product{ID: "2", Name: "Jute Bag", Price: 120}, 1, "")
	assert.InDelta(t, 620, c.Total(), 1e-9)

	c.SetQuantity("1", "Pink", 1)
	assert.InDelta(t, 370, c.Total(), 1e-9)

	c.Remove("2", "")
	assert.InDelta(t, 250, c.Total(), 1e-9)
}

func TestCountAndClear(t *testing.T) {
	c := New()
	c.Add(tumbler(), 2, "Pink")
	c.Add(Product{ID: "2", Name: "Jute Bag", Price: 120}, 3, "")

	assert.Equal(t, 5, c.Count())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Total())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(tumbler(), 1, "")

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestDrawerFlagDoesNotBlockMutation(t *testing.T) {
	c := New()
	c.SetOpen(true)

	c.Add(tumbler(), 1, "")
	assert.True(t, c.IsOpen())
	assert.Equal(t, 1, c.Len())

	c.SetOpen(false)
	assert.False(t, c.IsOpen())
}

func TestStoreIsSessionScoped(t *testing.T) {
	store := NewStore()
	alice := uuid.New()
	bob := uuid.New()

	store.Get(alice).Add(tumbler(), 1, "")

	assert.Equal(t, 1, store.Get(alice).Len())
	assert.Equal(t, 0, store.Get(bob).Len())
	assert.Same(t, store.Get(alice), store.Get(alice))
}
