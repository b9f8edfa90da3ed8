package state

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/shopfront-client/internal/cart"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

// CartLineRepo persists cart lines per principal scope.
type CartLineRepo struct {
	client *Client
}

func NewCartLineRepo(client *Client) *CartLineRepo {
	return &CartLineRepo{client: client}
}

// ReplaceLines swaps the persisted cart for the scope with the given
// lines, atomically. An empty slice clears the scope.
func (r *CartLineRepo) ReplaceLines(ctx context.Context, scope string, lines []cart.LineItem) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("scope = ?", scope).Delete(&CartLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		records := make([]CartLine, 0, len(lines))
		for i, line := range lines {
			records = append(records, CartLine{
				Scope:     scope,
				ProductID: line.ProductID,
				Position:  i,
				SKUCode:   line.SKUCode,
				Name:      line.Name,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
				ImageURL:  line.ImageURL,
			})
		}
		return tx.Create(&records).Error
	})
}

// LoadLines returns the persisted cart for the scope in insertion order.
func (r *CartLineRepo) LoadLines(ctx context.Context, scope string) ([]cart.LineItem, error) {
	var records []CartLine
	err := r.client.DB().WithContext(ctx).
		Where("scope = ?", scope).
		Order("position asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	lines := make([]cart.LineItem, 0, len(records))
	for _, record := range records {
		lines = append(lines, cart.LineItem{
			ProductID: record.ProductID,
			SKUCode:   record.SKUCode,
			Name:      record.Name,
			UnitPrice: record.UnitPrice,
			Quantity:  record.Quantity,
			ImageURL:  record.ImageURL,
		})
	}
	return lines, nil
}

// CartPersister turns the repo into a cart store listener. It is wired as
// a subscriber so the cart's transition logic never touches storage.
func CartPersister(repo *CartLineRepo, logg *logger.Logger) cart.Listener {
	return func(snap cart.Snapshot) {
		ctx := context.Background()
		if err := repo.ReplaceLines(ctx, snap.Scope, snap.Lines); err != nil && logg != nil {
			logg.Error(ctx, "persisting cart lines", err)
		}
	}
}
