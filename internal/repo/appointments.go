package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
)

type AppointmentRow struct {
	ID           uint   `json:"id"`
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func (r *GormRepo) ListAppointments(ctx context.Context) ([]AppointmentRow, error) {
	rows := []AppointmentRow{}
	err := r.DB.WithContext(ctx).
		Table("appointments").
		Select("appointments.id, appointments.customer_id, customers.name AS customer_name, appointments.date, appointments.time, appointments.status, appointments.notes").
		Joins("JOIN customers ON customers.id = appointments.customer_id").
		Order("appointments.date ASC, appointments.time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListAppointmentsByCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date ASC, time ASC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *GormRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.DB.WithContext(ctx).First(&appt, id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *GormRepo) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return r.DB.WithContext(ctx).Create(appt).Error
}

func (r *GormRepo) UpdateAppointmentStatus(ctx context.Context, id uint, status string) error {
	return r.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormRepo) CountAppointmentsOn(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Appointment{}).Where("date = ?", date).Count(&n).Error
	return n, err
}
