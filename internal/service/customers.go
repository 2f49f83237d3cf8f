package service

import (
	"context"
	"strings"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.ListCustomers(ctx)
}

func (s *CustomerService) Create(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Age:     req.Age,
		Gender:  req.Gender,
	}
	if err := s.Repo.CreateCustomer(ctx, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteCustomer(ctx, id)
}
