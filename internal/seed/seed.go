package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/visionx-optics/visionx-server/internal/hash"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

// EnsureAdmin creates the bootstrap admin account when none exists,
// so a fresh database is usable without manual SQL.
func EnsureAdmin(ctx context.Context, r *repo.GormRepo, email, password string, logger *slog.Logger) error {
	count, err := r.CountUsersByRole(ctx, "admin")
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	h, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: h,
		Role:         "admin",
	}
	if err := r.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.Info("admin_seeded", "email", email)
	return nil
}

// Demo populates an empty database with a small data set useful for
// local development: a patient login that matches a customer by email,
// some stock and an upcoming appointment.
func Demo(ctx context.Context, r *repo.GormRepo, logger *slog.Logger) error {
	count, err := r.CountCustomers(ctx)
	if err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	patientHash, err := hash.HashPassword("patient123")
	if err != nil {
		return fmt.Errorf("hash patient password: %w", err)
	}
	patient := &models.User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: patientHash,
		Role:         "patient",
	}
	if err := r.CreateUser(ctx, patient); err != nil {
		return fmt.Errorf("create patient user: %w", err)
	}

	johnAge, maryAge := 34, 67
	customers := []*models.Customer{
		{Name: "John Doe", Email: "john@example.com", Phone: "555-0101", Age: &johnAge, Gender: "male"},
		{Name: "Mary Smith", Email: "mary@example.com", Phone: "555-0102", Age: &maryAge, Gender: "female"},
	}
	for _, c := range customers {
		if err := r.CreateCustomer(ctx, c); err != nil {
			return fmt.Errorf("create customer %s: %w", c.Email, err)
		}
	}

	items := []*models.InventoryItem{
		{Category: "frame", Brand: "Ray-Ban", Model: "Wayfarer", Price: 149.99, Stock: 12, Details: `{"color":"black","material":"acetate"}`},
		{Category: "sunglasses", Brand: "Oakley", Model: "Holbrook", Price: 129.99, Stock: 8, Details: `{"color":"matte","uv":"400"}`},
		{Category: "lens", Brand: "Essilor", Model: "Varilux", Price: 249.50, Stock: 20, Details: `{"coating":"anti-reflective"}`},
		{Category: "accessory", Brand: "Generic", Model: "Cleaning Kit", Price: 9.99, Stock: 3, Details: `{}`},
	}
	for _, it := range items {
		if err := r.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("create item %s %s: %w", it.Brand, it.Model, err)
		}
	}

	appt := &models.Appointment{
		CustomerID: customers[0].ID,
		Date:       "2026-09-15",
		Time:       "10:30",
		Status:     "pending",
		Notes:      "annual checkup",
	}
	if err := r.CreateAppointment(ctx, appt); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	logger.Info("demo_data_seeded", "customers", len(customers), "items", len(items))
	return nil
}
