package admin

import (
	"context"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
)

// InventoryAPI is the backend surface the inventory service depends on.
type InventoryAPI interface {
	GetAll(ctx context.Context) ([]api.InventoryRow, error)
	CheckStock(ctx context.Context, skuCode string) (*api.StockSnapshot, error)
	UpdateStock(ctx context.Context, skuCode string, quantity int) (*api.InventoryRow, error)
}

// InventoryService exposes the stock table and per-SKU adjustments.
// Stock snapshots for the storefront quantity selector bypass the cache;
// the admin table view is cached like any other list.
type InventoryService interface {
	ListAll(ctx context.Context) ([]api.InventoryRow, error)
	CheckStock(ctx context.Context, skuCode string) (*api.StockSnapshot, error)
	UpdateStock(ctx context.Context, skuCode string, quantity int) (*api.InventoryRow, error)
}

type inventoryService struct {
	backend InventoryAPI
	sync    *syncer.Syncer
}

func NewInventoryService(backend InventoryAPI, sync *syncer.Syncer) (InventoryService, error) {
	if backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory api is required")
	}
	if sync == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "syncer is required")
	}
	return &inventoryService{backend: backend, sync: sync}, nil
}

func (s *inventoryService) ListAll(ctx context.Context) ([]api.InventoryRow, error) {
	return syncer.Query(ctx, s.sync, enums.ResourceInventory, "all", func(ctx context.Context) ([]api.InventoryRow, error) {
		return s.backend.GetAll(ctx)
	})
}

// CheckStock is always live. Quantity bounds on a product page must track
// the backend, not a cached table row.
func (s *inventoryService) CheckStock(ctx context.Context, skuCode string) (*api.StockSnapshot, error) {
	if skuCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku code is required")
	}
	return s.backend.CheckStock(ctx, skuCode)
}

func (s *inventoryService) UpdateStock(ctx context.Context, skuCode string, quantity int) (*api.InventoryRow, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	var updated *api.InventoryRow
	err := s.sync.Mutate(ctx, enums.ResourceInventory, "Stock updated", func(ctx context.Context) error {
		row, err := s.backend.UpdateStock(ctx, skuCode, quantity)
		if err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
