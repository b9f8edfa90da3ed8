package state

import (
	"time"

	"github.com/shopspring/decimal"
)

// credentialRowID pins the credential table to a single row: the client
// holds at most one session at a time.
const credentialRowID = 1

// CredentialRecord persists the principal and bearer credential.
type CredentialRecord struct {
	ID          int       `gorm:"column:id;primaryKey"`
	PrincipalID string    `gorm:"column:principal_id;not null"`
	DisplayName string    `gorm:"column:display_name"`
	Email       string    `gorm:"column:email"`
	Role        string    `gorm:"column:role;not null"`
	Credential  string    `gorm:"column:credential;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// CartLine persists one cart line, partitioned by principal scope so one
// account's cart is never restored for another.
type CartLine struct {
	Scope     string          `gorm:"column:scope;primaryKey"`
	ProductID string          `gorm:"column:product_id;primaryKey"`
	Position  int             `gorm:"column:position;not null"`
	SKUCode   string          `gorm:"column:sku_code;not null"`
	Name      string          `gorm:"column:name;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:text;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	ImageURL  string          `gorm:"column:image_url"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
