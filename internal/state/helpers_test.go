package state

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopfront-client/internal/api"
)

func testProduct(id, sku, price string) api.Product {
	return api.Product{
		ID:      id,
		SKUCode: sku,
		Name:    "product " + id,
		Price:   decimal.RequireFromString(price),
	}
}
