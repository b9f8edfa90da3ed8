package admin

import (
	"context"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// ProductAPI is the backend surface the product service depends on.
type ProductAPI interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Product], error)
	Get(ctx context.Context, id string) (*api.Product, error)
	Create(ctx context.Context, input api.ProductInput) (*api.Product, error)
	Update(ctx context.Context, id string, input api.ProductInput) (*api.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductService is the admin catalog surface: cached list reads and
// mutations that invalidate every cached product view on confirmation.
type ProductService interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Product], error)
	Get(ctx context.Context, id string) (*api.Product, error)
	Create(ctx context.Context, input api.ProductInput) (*api.Product, error)
	Update(ctx context.Context, id string, input api.ProductInput) (*api.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	backend ProductAPI
	sync    *syncer.Syncer
}

func NewProductService(backend ProductAPI, sync *syncer.Syncer) (ProductService, error) {
	if backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product api is required")
	}
	if sync == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "syncer is required")
	}
	return &productService{backend: backend, sync: sync}, nil
}

func (s *productService) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Product], error) {
	params = params.Normalize()
	return syncer.Query(ctx, s.sync, enums.ResourceProducts, params.Key(), func(ctx context.Context) (*pagination.Page[api.Product], error) {
		return s.backend.List(ctx, params)
	})
}

func (s *productService) Get(ctx context.Context, id string) (*api.Product, error) {
	return syncer.Query(ctx, s.sync, enums.ResourceProducts, "id="+id, func(ctx context.Context) (*api.Product, error) {
		return s.backend.Get(ctx, id)
	})
}

func (s *productService) Create(ctx context.Context, input api.ProductInput) (*api.Product, error) {
	var created *api.Product
	err := s.sync.Mutate(ctx, enums.ResourceProducts, "Product created", func(ctx context.Context) error {
		product, err := s.backend.Create(ctx, input)
		if err != nil {
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *productService) Update(ctx context.Context, id string, input api.ProductInput) (*api.Product, error) {
	var updated *api.Product
	err := s.sync.Mutate(ctx, enums.ResourceProducts, "Product updated", func(ctx context.Context) error {
		product, err := s.backend.Update(ctx, id, input)
		if err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.sync.Mutate(ctx, enums.ResourceProducts, "Product deleted", func(ctx context.Context) error {
		return s.backend.Delete(ctx, id)
	})
}
