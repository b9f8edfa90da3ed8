package api

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// OrderAPI wraps the order collaborator endpoints.
type OrderAPI struct {
	client *Client
}

func NewOrderAPI(client *Client) *OrderAPI {
	return &OrderAPI{client: client}
}

// Create submits an order draft. idempotencyKey travels as a header so the
// backend can collapse an accidental duplicate submission of one attempt.
func (a *OrderAPI) Create(ctx context.Context, draft OrderDraft, idempotencyKey string) (*OrderRecord, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[HeaderIdempotencyKey] = idempotencyKey
	}

	var record OrderRecord
	err := a.client.do(ctx, request{
		method:  http.MethodPost,
		path:    "/api/order",
		body:    draft,
		headers: headers,
	}, &record)
	if err != nil {
		return nil, err
	}
	if record.OrderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order response missing orderId")
	}
	return &record, nil
}

func (a *OrderAPI) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[OrderRecord], error) {
	var page pagination.Page[OrderRecord]
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/order",
		query:  params.QueryValues(),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *OrderAPI) Get(ctx context.Context, id string) (*OrderRecord, error) {
	var record OrderRecord
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/order/" + id,
	}, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (a *OrderAPI) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (*OrderRecord, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	var record OrderRecord
	err := a.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/order/" + id + "/status",
		body:   map[string]enums.OrderStatus{"status": status},
	}, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
