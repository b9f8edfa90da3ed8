package admin

import (
	"context"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// AdminOrderAPI is the backend surface the order service depends on.
type AdminOrderAPI interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.OrderRecord], error)
	Get(ctx context.Context, id string) (*api.OrderRecord, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (*api.OrderRecord, error)
}

// OrderService is the admin order table: cached list/detail reads plus
// status assignment. Any status can be submitted from here; the backend
// owns the transition rules and rejects invalid moves.
type OrderService interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.OrderRecord], error)
	Get(ctx context.Context, id string) (*api.OrderRecord, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (*api.OrderRecord, error)
}

type orderService struct {
	backend AdminOrderAPI
	sync    *syncer.Syncer
}

func NewOrderService(backend AdminOrderAPI, sync *syncer.Syncer) (OrderService, error) {
	if backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order api is required")
	}
	if sync == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "syncer is required")
	}
	return &orderService{backend: backend, sync: sync}, nil
}

func (s *orderService) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.OrderRecord], error) {
	params = params.Normalize()
	return syncer.Query(ctx, s.sync, enums.ResourceOrders, params.Key(), func(ctx context.Context) (*pagination.Page[api.OrderRecord], error) {
		return s.backend.List(ctx, params)
	})
}

func (s *orderService) Get(ctx context.Context, id string) (*api.OrderRecord, error) {
	return syncer.Query(ctx, s.sync, enums.ResourceOrders, "id="+id, func(ctx context.Context) (*api.OrderRecord, error) {
		return s.backend.Get(ctx, id)
	})
}

// UpdateStatus invalidates every cached order view on success, so a
// filtered list the row just left and the detail view both refetch.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (*api.OrderRecord, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").WithDetails(string(status))
	}
	var updated *api.OrderRecord
	err := s.sync.Mutate(ctx, enums.ResourceOrders, "Order status updated", func(ctx context.Context) error {
		record, err := s.backend.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
