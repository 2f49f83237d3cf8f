package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

// PatientService scopes the patient portal. The caller's Customer row is
// resolved by email equality against the authenticated User; when none
// matches, every lookup fails closed with an empty collection, never an
// error, so nothing about other records leaks.
type PatientService struct {
	Repo *repo.GormRepo
}

// ownCustomer returns (nil, nil) when the patient has no Customer row.
func (s *PatientService) ownCustomer(ctx context.Context, userID uint) (*models.Customer, error) {
	user, err := s.Repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer, err := s.Repo.FindCustomerByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

func (s *PatientService) MyAppointments(ctx context.Context, userID uint) ([]models.Appointment, error) {
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []models.Appointment{}, nil
	}
	return s.Repo.ListAppointmentsByCustomer(ctx, customer.ID)
}

func (s *PatientService) MyTests(ctx context.Context, userID uint) ([]models.EyeTest, error) {
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []models.EyeTest{}, nil
	}
	return s.Repo.ListEyeTestsByCustomer(ctx, customer.ID)
}

func (s *PatientService) MyPrescriptions(ctx context.Context, userID uint) ([]models.Prescription, error) {
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []models.Prescription{}, nil
	}
	return s.Repo.ListPrescriptionsByCustomer(ctx, customer.ID)
}
