package repo

import (
	"context"
	"encoding/json"

	"github.com/visionx-optics/visionx-server/internal/models"
	"gorm.io/gorm"
)

type SaleLine struct {
	ItemID   uint    `json:"item_id"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Price    float64 `json:"price"`
	Quantity uint    `json:"quantity"`
}

// Checkout turns the user's cart into a Sale inside one transaction.
// Stock is decremented with a floor-at-zero guard; a shortage on any
// line rolls the whole thing back with ErrInsufficientStock.
func (r *GormRepo) Checkout(ctx context.Context, userID, customerID uint) (*models.Sale, error) {
	var sale *models.Sale

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return gorm.ErrRecordNotFound
		}

		var total float64
		saleLines := make([]SaleLine, 0, len(lines))
		for _, line := range lines {
			var item models.InventoryItem
			if err := tx.First(&item, line.ItemID).Error; err != nil {
				return err
			}

			res := tx.Model(&models.InventoryItem{}).
				Where("id = ? AND stock >= ?", item.ID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			total += item.Price * float64(line.Quantity)
			saleLines = append(saleLines, SaleLine{
				ItemID:   item.ID,
				Brand:    item.Brand,
				Model:    item.Model,
				Price:    item.Price,
				Quantity: line.Quantity,
			})
		}

		itemsJSON, err := json.Marshal(saleLines)
		if err != nil {
			return err
		}

		sale = &models.Sale{
			CustomerID: customerID,
			Items:      string(itemsJSON),
			Total:      total,
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *GormRepo) ListSales(ctx context.Context) ([]models.Sale, error) {
	out := []models.Sale{}
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
