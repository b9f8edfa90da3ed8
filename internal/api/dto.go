package api

import (
	"time"

	"github.com/angelmondragon/shopfront-client/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is the catalog row shown on storefront and admin screens.
type Product struct {
	ID          string          `json:"id"`
	SKUCode     string          `json:"skuCode"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	SKUCode     string          `json:"skuCode"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// StockSnapshot is a point-in-time read of available inventory for a SKU.
// It is owned by the inventory collaborator; the client never mutates it.
type StockSnapshot struct {
	SKUCode           string `json:"skuCode"`
	AvailableQuantity int    `json:"quantity"`
}

// ShippingAddress is the checkout shipping block, passed through verbatim.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// OrderLineItem is one cart line projected into an order draft.
type OrderLineItem struct {
	SKUCode   string          `json:"skuCode"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderDraft is the client-assembled, unsaved order payload. The backend
// assigns identity; the client never invents an orderId.
type OrderDraft struct {
	CustomerName    string          `json:"customerName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	LineItems       []OrderLineItem `json:"orderLineItemsDtoList"`
}

// OrderRecord is the server-confirmed order.
type OrderRecord struct {
	OrderID      string            `json:"orderId"`
	OrderNumber  string            `json:"orderNumber"`
	CustomerName string            `json:"customerName,omitempty"`
	Status       enums.OrderStatus `json:"status"`
	Total        decimal.Decimal   `json:"total"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// User is the admin user-management row.
type User struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Role       enums.UserRole   `json:"role"`
	Status     enums.UserStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt,omitempty"`
	LastActive time.Time        `json:"lastActive,omitempty"`
}

// UserInput is the admin create/update payload.
type UserInput struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  enums.UserRole `json:"role,omitempty"`
}

// InventoryRow is one SKU in the admin inventory table.
type InventoryRow struct {
	SKUCode   string    `json:"skuCode"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Notification is one entry in the admin notification log.
type Notification struct {
	ID             string                   `json:"id"`
	RecipientName  string                   `json:"recipientName"`
	RecipientEmail string                   `json:"recipientEmail"`
	Type           enums.NotificationType   `json:"type"`
	Subject        string                   `json:"subject"`
	Status         enums.NotificationStatus `json:"status"`
	SentAt         time.Time                `json:"sentAt,omitempty"`
}
