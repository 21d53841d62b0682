package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	p1 = Product{ID: "p1", Name: "Плетений кошик", Price: 100, Image: "/images/basket.jpg"}
	p2 = Product{ID: "p2", Name: "Керамічна чашка", Price: 50, Image: "/images/cup.jpg"}
	p3 = Product{ID: "p3", Name: "В'язаний шарф", Price: 30, Image: "/images/scarf.jpg"}
)

func TestAddAggregatesByProductID(t *testing.T) {
	var c Cart
	c.Add(p1)
	c.Add(p1)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p1", c.Lines[0].ID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 200.0, c.Total())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(p1)
	c.Add(p2)
	c.Add(p1)
	c.Add(p3)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, "p1", c.Lines[0].ID)
	assert.Equal(t, "p2", c.Lines[1].ID)
	assert.Equal(t, "p3", c.Lines[2].ID)
}

func TestChangeQuantityDeletesAtZeroOrBelow(t *testing.T) {
	t.Run("exactly to zero", func(t *testing.T) {
		var c Cart
		c.Add(p1)
		c.Add(p1)

		require.True(t, c.ChangeQuantity("p1", -2))
		assert.Empty(t, c.Lines)
	})

	t.Run("past zero", func(t *testing.T) {
		var c Cart
		c.Add(p1)

		require.True(t, c.ChangeQuantity("p1", -5))
		assert.Empty(t, c.Lines)
	})

	t.Run("stays above zero", func(t *testing.T) {
		var c Cart
		c.Add(p1)
		c.Add(p1)

		require.True(t, c.ChangeQuantity("p1", -1))
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 1, c.Lines[0].Quantity)
	})
}

func TestChangeQuantityUnknownID(t *testing.T) {
	var c Cart
	c.Add(p1)

	assert.False(t, c.ChangeQuantity("nope", 1))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestRemoveDeletesRegardlessOfQuantity(t *testing.T) {
	var c Cart
	c.Add(p1)
	c.Add(p1)
	c.Add(p2)

	require.True(t, c.Remove("p1"))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p2", c.Lines[0].ID)
	assert.Equal(t, 50.0, c.Total())

	assert.False(t, c.Remove("p1"))
}

func TestTotal(t *testing.T) {
	var c Cart
	assert.Equal(t, 0.0, c.Total())

	c.Add(p3) // 30
	c.Add(p3) // 60
	c.Add(p2) // 110
	assert.Equal(t, 110.0, c.Total())
}

func TestItemCountCountsUnitsNotLines(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.ItemCount())

	c.Add(p1)
	c.Add(p1)
	c.Add(p2)
	assert.Equal(t, 3, c.ItemCount())
	assert.Len(t, c.Lines, 2)
}

func TestSnapshotIsIndependent(t *testing.T) {
	var c Cart
	c.Add(p1)
	c.Add(p2)

	snap := c.Snapshot()
	require.Len(t, snap, 2)

	c.Remove("p1")
	c.ChangeQuantity("p2", 4)

	assert.Equal(t, "p1", snap[0].ID)
	assert.Equal(t, 1, snap[0].Quantity)
	assert.Equal(t, 1, snap[1].Quantity)
}
