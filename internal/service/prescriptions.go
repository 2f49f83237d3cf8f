package service

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type PrescriptionService struct {
	Repo *repo.GormRepo
}

func (s *PrescriptionService) List(ctx context.Context) ([]models.Prescription, error) {
	return s.Repo.ListPrescriptions(ctx)
}

func (s *PrescriptionService) Create(ctx context.Context, req transport.CreatePrescriptionRequest) (*models.Prescription, error) {
	if req.CustomerID == 0 {
		return nil, ErrValidation
	}

	// Optical values stay free text: "-2.50", "plano", "+1.75 DS" are
	// all valid clinical notation.
	p := models.Prescription{
		CustomerID: req.CustomerID,
		IssueDate:  req.IssueDate,
		ODSphere:   req.ODSphere,
		ODCylinder: req.ODCylinder,
		ODAxis:     req.ODAxis,
		OSSphere:   req.OSSphere,
		OSCylinder: req.OSCylinder,
		OSAxis:     req.OSAxis,
		PD:         req.PD,
		Addition:   req.Addition,
		Notes:      req.Notes,
	}
	if err := s.Repo.CreatePrescription(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
