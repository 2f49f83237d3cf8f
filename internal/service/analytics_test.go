package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/models"
)

func TestClassifySummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		results string
		want    string
	}{
		{"myopia", `{"summary":"Signs of myopia detected"}`, "myopia"},
		{"hyperopia", `{"summary":"Mild Hyperopia noted"}`, "hyperopia"},
		{"astigmatism", `{"summary":"astigmatism in the left eye"}`, "astigmatism"},
		{"first keyword wins", `{"summary":"astigmatism, mild myopia"}`, "myopia"},
		{"case insensitive", `{"summary":"MYOPIA"}`, "myopia"},
		{"no keyword", `{"summary":"normal vision"}`, "normal"},
		{"manual shape", `{"type":"manual","summary":"20/20 both eyes"}`, "normal"},
		{"missing summary", `{"left_eye":{}}`, "normal"},
		{"unparseable", `not json`, "normal"},
		{"empty", ``, "normal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySummary(tc.results))
		})
	}
}

func TestAnalyticsService_EyeConditions(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AnalyticsService{Repo: r}
	ctx := context.Background()

	customer := models.Customer{Name: "Subject", Email: "s@example.com"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	summaries := []string{
		`{"summary":"myopia detected"}`,
		`{"summary":"Hyperopia noted"}`,
		`{"summary":"normal vision"}`,
		`{"summary":"astigmatism, mild myopia"}`,
	}
	for _, s := range summaries {
		require.NoError(t, r.CreateEyeTest(ctx, &models.EyeTest{CustomerID: customer.ID, Results: s}))
	}

	stats, err := svc.EyeConditions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Myopia)
	assert.Equal(t, 1, stats.Hyperopia)
	assert.Equal(t, 0, stats.Astigmatism)
	assert.Equal(t, 1, stats.Normal)
}

func TestAnalyticsService_Demographics_AgeBrackets(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AnalyticsService{Repo: r}
	ctx := context.Background()

	ages := []int{10, 18, 35, 36, 60, 61}
	for i, a := range ages {
		age := a
		c := models.Customer{
			Name:   "C",
			Email:  fmt.Sprintf("c%d@example.com", i),
			Gender: "female",
			Age:    &age,
		}
		require.NoError(t, r.CreateCustomer(ctx, &c))
	}
	// A missing age falls into the oldest bracket.
	noAge := models.Customer{Name: "N", Email: "n@example.com", Gender: "male"}
	require.NoError(t, r.CreateCustomer(ctx, &noAge))

	demo, err := svc.Demographics(ctx)
	require.NoError(t, err)

	got := map[string]int64{}
	for _, g := range demo.Age {
		got[g.AgeGroup] = g.Count
	}
	assert.EqualValues(t, 1, got["0-17"])
	assert.EqualValues(t, 2, got["18-35"])
	assert.EqualValues(t, 2, got["36-60"])
	assert.EqualValues(t, 2, got["60+"])

	gender := map[string]int64{}
	for _, g := range demo.Gender {
		gender[g.Gender] = g.Count
	}
	assert.EqualValues(t, 6, gender["female"])
	assert.EqualValues(t, 1, gender["male"])
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &AnalyticsService{Repo: r}
	ctx := context.Background()

	customer := models.Customer{Name: "Subject", Email: "d@example.com"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	require.NoError(t, r.CreateItem(ctx, &models.InventoryItem{Category: "frame", Brand: "A", Model: "1", Price: 10, Stock: 2}))
	require.NoError(t, r.CreateItem(ctx, &models.InventoryItem{Category: "frame", Brand: "B", Model: "2", Price: 10, Stock: 50}))

	today := time.Now().Format("2006-01-02")
	require.NoError(t, r.CreateAppointment(ctx, &models.Appointment{CustomerID: customer.ID, Date: today, Time: "10:00", Status: "pending"}))
	require.NoError(t, r.CreateAppointment(ctx, &models.Appointment{CustomerID: customer.ID, Date: "1999-01-01", Time: "10:00", Status: "completed"}))

	require.NoError(t, r.CreateEyeTest(ctx, &models.EyeTest{CustomerID: customer.ID, Results: `{"summary":"fine"}`}))

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.EqualValues(t, 1, stats.LowStock)
	assert.EqualValues(t, 1, stats.AppointmentsToday)
	assert.EqualValues(t, 1, stats.AITests)
}
