package service

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

var validStatuses = map[string]bool{
	"pending":   true,
	"approved":  true,
	"completed": true,
	"cancelled": true,
}

// legalTransitions is only consulted in strict mode. The permissive mode
// matches the historically observed behavior: any known status may be
// written at any time.
var legalTransitions = map[string][]string{
	"pending":  {"approved", "cancelled"},
	"approved": {"completed"},
}

type AppointmentService struct {
	Repo *repo.GormRepo

	// StrictTransitions enforces pending→{approved,cancelled} and
	// approved→completed as the only legal moves.
	StrictTransitions bool
}

func (s *AppointmentService) List(ctx context.Context) ([]repo.AppointmentRow, error) {
	return s.Repo.ListAppointments(ctx)
}

func (s *AppointmentService) Create(ctx context.Context, req transport.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.CustomerID == 0 || req.Date == "" || req.Time == "" {
		return nil, ErrValidation
	}

	appt := models.Appointment{
		CustomerID: req.CustomerID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     "pending",
		Notes:      req.Notes,
	}
	if err := s.Repo.CreateAppointment(ctx, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentService) SetStatus(ctx context.Context, id uint, status string) (*models.Appointment, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	appt, err := s.Repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.StrictTransitions && !transitionAllowed(appt.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.Repo.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appt, nil
}

func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
