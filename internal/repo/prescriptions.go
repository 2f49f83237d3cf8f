package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
)

func (r *GormRepo) CreatePrescription(ctx context.Context, p *models.Prescription) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) ListPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	out := []models.Prescription{}
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) ListPrescriptionsByCustomer(ctx context.Context, customerID uint) ([]models.Prescription, error) {
	out := []models.Prescription{}
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
