package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.DB.WithContext(ctx).Create(customer).Error
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindCustomerByEmail resolves the soft User-to-Customer link. The match
// is plain email equality, no foreign key backs it.
func (r *GormRepo) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}
