package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var out payload
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", payload{Name: "a", Total: 3}, time.Minute))
	found, err = c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "a", Total: 3}, out)
}

func TestMemoryCache_Expira(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NoError(t, c.Set(ctx, "k", payload{Name: "a"}, time.Minute))
	c.now = func() time.Time { return base.Add(2 * time.Minute) }

	var out payload
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_BumpVersion(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", payload{Name: "a"}, 0))

	v, err := c.BumpVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	cur, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cur)

	var out payload
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
