package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

// CartService keeps at most one line per (user, item): adding an
// already-present item increments quantity instead of inserting a
// duplicate row. The find-or-increment pair is not atomic; under this
// load a lost increment is an accepted race.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.ListCart(ctx, userID)
}

func (s *CartService) Add(ctx context.Context, userID, itemID, quantity uint) (*models.CartItem, error) {
	if itemID == 0 {
		return nil, ErrValidation
	}
	if quantity < 1 {
		quantity = 1
	}

	// No stock-availability check here; checkout owns that.
	line, err := s.Repo.FindCartLine(ctx, userID, itemID)
	if err == nil {
		line.Quantity += quantity
		if err := s.Repo.SaveCartLine(ctx, line); err != nil {
			return nil, err
		}
		return line, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newLine := models.CartItem{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	if err := s.Repo.CreateCartLine(ctx, &newLine); err != nil {
		return nil, err
	}
	return &newLine, nil
}

func (s *CartService) Remove(ctx context.Context, userID, lineID uint) error {
	return s.Repo.DeleteCartLine(ctx, userID, lineID)
}
