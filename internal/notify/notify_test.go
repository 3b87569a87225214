package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNewestFirst(t *testing.T) {
	ctx := context.Background()
	c := NewCenter(50)

	c.Add(ctx, TypeQuestComplete, "first", "", "✅")
	c.Add(ctx, TypeLevelUp, "second", "", "🎉")

	items := c.List(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
	assert.Equal(t, 2, c.Unread(ctx))
}

func TestCapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := NewCenter(3)

	for i := 0; i < 5; i++ {
		c.Add(ctx, TypeAchievement, fmt.Sprintf("n%d", i), "", "")
	}

	items := c.List(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, "n4", items[0].Title)
	assert.Equal(t, "n2", items[2].Title)
	assert.Equal(t, 3, c.Unread(ctx), "evicted unread entries leave the count")
}

func TestMarkReadIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewCenter(50)

	n := c.Add(ctx, TypeItemFound, "loot", "", "🎁")
	require.Equal(t, 1, c.Unread(ctx))

	assert.True(t, c.MarkRead(ctx, n.ID))
	assert.Equal(t, 0, c.Unread(ctx))

	assert.True(t, c.MarkRead(ctx, n.ID), "second mark is a no-op, not an error")
	assert.Equal(t, 0, c.Unread(ctx))

	assert.False(t, c.MarkRead(ctx, "missing"))
}

func TestMarkAllReadAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewCenter(50)

	c.Add(ctx, TypeWeatherChange, "a", "", "")
	c.Add(ctx, TypeWeatherChange, "b", "", "")

	c.MarkAllRead(ctx)
	assert.Equal(t, 0, c.Unread(ctx))
	for _, n := range c.List(ctx) {
		assert.True(t, n.Read)
	}

	c.Clear(ctx)
	assert.Empty(t, c.List(ctx))
}
