package service

import (
	"context"
	"fmt"

	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

type BillingService struct {
	Repo *repo.GormRepo
}

// Checkout converts the cart into a Sale and notifies the buyer. The
// stock decrement happens inside the checkout transaction with a
// floor-at-zero guard.
func (s *BillingService) Checkout(ctx context.Context, userID, customerID uint) (*models.Sale, error) {
	l := logging.FromContext(ctx).With("svc", "billing.checkout")

	sale, err := s.Repo.Checkout(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	notification := models.Notification{
		UserID:   userID,
		Title:    "Order placed",
		Message:  fmt.Sprintf("Your order #%d for $%.2f has been recorded.", sale.ID, sale.Total),
		Category: "order",
	}
	if err := s.Repo.CreateNotification(ctx, &notification); err != nil {
		l.Warn("order notification failed", "sale_id", sale.ID, "error", err)
	}

	l.Info("checkout completed", "sale_id", sale.ID, "total", sale.Total)
	return sale, nil
}

func (s *BillingService) Sales(ctx context.Context) ([]models.Sale, error) {
	return s.Repo.ListSales(ctx)
}
