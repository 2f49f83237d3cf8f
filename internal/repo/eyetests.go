package repo

import (
	"context"
	"time"

	"github.com/visionx-optics/visionx-server/internal/models"
)

type EyeTestRow struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Date         time.Time `json:"date"`
	Results      string    `json:"results"`
	ImageURL     string    `json:"image_url"`
}

func (r *GormRepo) ListEyeTests(ctx context.Context) ([]EyeTestRow, error) {
	rows := []EyeTestRow{}
	err := r.DB.WithContext(ctx).
		Table("eye_tests").
		Select("eye_tests.id, eye_tests.customer_id, customers.name AS customer_name, eye_tests.date, eye_tests.results, eye_tests.image_url").
		Joins("JOIN customers ON customers.id = eye_tests.customer_id").
		Order("eye_tests.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListEyeTestsByCustomer(ctx context.Context, customerID uint) ([]models.EyeTest, error) {
	tests := []models.EyeTest{}
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *GormRepo) CreateEyeTest(ctx context.Context, test *models.EyeTest) error {
	return r.DB.WithContext(ctx).Create(test).Error
}

// AllEyeTestResults feeds the eye-condition aggregation; only the raw
// results blobs are needed.
func (r *GormRepo) AllEyeTestResults(ctx context.Context) ([]string, error) {
	var results []string
	err := r.DB.WithContext(ctx).
		Model(&models.EyeTest{}).
		Pluck("results", &results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *GormRepo) CountEyeTests(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.EyeTest{}).Count(&n).Error
	return n, err
}
