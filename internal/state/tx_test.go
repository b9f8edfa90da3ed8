package state

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/shopfront-client/internal/cart"
	"github.com/angelmondragon/shopfront-client/pkg/config"
)

func TestWithTx_RollsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	client, err := New(context.Background(), config.StateConfig{Path: path}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCartLineRepo(client)
	ctx := context.Background()

	seeded := []cart.LineItem{
		{ProductID: "p1", SKUCode: "A1", Name: "Mug", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
	}
	require.NoError(t, repo.ReplaceLines(ctx, "guest", seeded))

	boom := errors.New("boom")
	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		require.NoError(t, tx.Where("scope = ?", "guest").Delete(&CartLine{}).Error)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The delete inside the failed transaction must not stick.
	loaded, err := repo.LoadLines(ctx, "guest")
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "p1", loaded[0].ProductID)
}

func TestReplaceLines_PreservesPositionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	client, err := New(context.Background(), config.StateConfig{Path: path}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCartLineRepo(client)
	ctx := context.Background()

	lines := []cart.LineItem{
		{ProductID: "p3", SKUCode: "C3", Name: "Hat", UnitPrice: decimal.RequireFromString("3.00"), Quantity: 1},
		{ProductID: "p1", SKUCode: "A1", Name: "Mug", UnitPrice: decimal.RequireFromString("1.00"), Quantity: 1},
		{ProductID: "p2", SKUCode: "B2", Name: "Pen", UnitPrice: decimal.RequireFromString("2.00"), Quantity: 1},
	}
	require.NoError(t, repo.ReplaceLines(ctx, "guest", lines))

	loaded, err := repo.LoadLines(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i, line := range lines {
		assert.Equal(t, line.ProductID, loaded[i].ProductID, "line %d out of order", i)
	}
}
