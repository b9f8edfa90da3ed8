package api

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// ProductAPI wraps the product collaborator endpoints.
type ProductAPI struct {
	client *Client
}

func NewProductAPI(client *Client) *ProductAPI {
	return &ProductAPI{client: client}
}

func (a *ProductAPI) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[Product], error) {
	var page pagination.Page[Product]
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/product",
		query:  params.QueryValues(),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *ProductAPI) Get(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/product/" + id,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *ProductAPI) Create(ctx context.Context, input ProductInput) (*Product, error) {
	var product Product
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/product",
		body:   input,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *ProductAPI) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	var product Product
	err := a.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/product/" + id,
		body:   input,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *ProductAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/product/" + id,
	}, nil)
}
