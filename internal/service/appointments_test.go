package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

func seedAppointment(t *testing.T, r *repo.GormRepo, status string) *models.Appointment {
	t.Helper()

	ctx := context.Background()
	customer := models.Customer{Name: "Test Customer", Email: "c@example.com"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	appt := models.Appointment{CustomerID: customer.ID, Date: "2026-09-20", Time: "14:00", Status: status}
	require.NoError(t, r.CreateAppointment(ctx, &appt))
	return &appt
}

func TestAppointmentService_Create_DefaultsToPending(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AppointmentService{Repo: r}
	ctx := context.Background()

	customer := models.Customer{Name: "Walk In", Email: "w@example.com"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	appt, err := svc.Create(ctx, transport.CreateAppointmentRequest{
		CustomerID: customer.ID,
		Date:       "2026-10-01",
		Time:       "09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", appt.Status)
}

func TestAppointmentService_Create_RequiresFields(t *testing.T) {
	t.Parallel()

	svc := &AppointmentService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.CreateAppointmentRequest{Date: "2026-10-01", Time: "09:30"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateAppointmentRequest{CustomerID: 1, Time: "09:30"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAppointmentService_SetStatus_RejectsUnknownValue(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AppointmentService{Repo: r}
	appt := seedAppointment(t, r, "pending")

	_, err := svc.SetStatus(context.Background(), appt.ID, "done")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointmentService_SetStatus_PermissiveAllowsAnyKnownValue(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AppointmentService{Repo: r}
	ctx := context.Background()
	appt := seedAppointment(t, r, "completed")

	// Out of order, but permitted when strict mode is off.
	updated, err := svc.SetStatus(ctx, appt.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)

	got, err := r.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestAppointmentService_SetStatus_StrictEnforcesOrder(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AppointmentService{Repo: r, StrictTransitions: true}
	ctx := context.Background()
	appt := seedAppointment(t, r, "pending")

	_, err := svc.SetStatus(ctx, appt.ID, "completed")
	require.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := svc.SetStatus(ctx, appt.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)

	// Same-status writes are a no-op, not a violation.
	_, err = svc.SetStatus(ctx, appt.ID, "approved")
	require.NoError(t, err)

	updated, err = svc.SetStatus(ctx, appt.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	_, err = svc.SetStatus(ctx, appt.ID, "pending")
	require.ErrorIs(t, err, ErrInvalidTransition)
}
