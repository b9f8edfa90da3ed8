package api

import (
	"context"
	"net/http"
)

// InventoryAPI wraps the inventory collaborator endpoints.
type InventoryAPI struct {
	client *Client
}

func NewInventoryAPI(client *Client) *InventoryAPI {
	return &InventoryAPI{client: client}
}

// CheckStock fetches the live snapshot for one SKU. Storefront quantity
// pickers are bounded by this read; checkout deliberately is not.
func (a *InventoryAPI) CheckStock(ctx context.Context, skuCode string) (*StockSnapshot, error) {
	var snapshot StockSnapshot
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/inventory/" + skuCode,
	}, &snapshot)
	if err != nil {
		return nil, err
	}
	if snapshot.SKUCode == "" {
		snapshot.SKUCode = skuCode
	}
	return &snapshot, nil
}

func (a *InventoryAPI) GetAll(ctx context.Context) ([]InventoryRow, error) {
	var rows []InventoryRow
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/inventory",
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *InventoryAPI) UpdateStock(ctx context.Context, skuCode string, quantity int) (*InventoryRow, error) {
	var row InventoryRow
	err := a.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/inventory/" + skuCode,
		body:   map[string]int{"quantity": quantity},
	}, &row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
