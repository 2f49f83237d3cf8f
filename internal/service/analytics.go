package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/visionx-optics/visionx-server/internal/repo"
)

type AnalyticsService struct {
	Repo *repo.GormRepo
}

// conditionKeywords is ordered: the first keyword found in a summary
// wins, so a summary mentioning both myopia and hyperopia counts only
// toward myopia.
var conditionKeywords = []string{"myopia", "hyperopia", "astigmatism"}

type ConditionStats struct {
	Myopia      int `json:"myopia"`
	Hyperopia   int `json:"hyperopia"`
	Astigmatism int `json:"astigmatism"`
	Normal      int `json:"normal"`
}

// ClassifySummary buckets one results blob by its summary wording.
// Manual-test records carry no clinical keywords and land in "normal",
// as does anything unparseable.
func ClassifySummary(resultsJSON string) string {
	var payload struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(resultsJSON), &payload); err != nil {
		return "normal"
	}

	summary := strings.ToLower(payload.Summary)
	for _, kw := range conditionKeywords {
		if strings.Contains(summary, kw) {
			return kw
		}
	}
	return "normal"
}

func (s *AnalyticsService) EyeConditions(ctx context.Context) (*ConditionStats, error) {
	blobs, err := s.Repo.AllEyeTestResults(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ConditionStats{}
	for _, blob := range blobs {
		switch ClassifySummary(blob) {
		case "myopia":
			stats.Myopia++
		case "hyperopia":
			stats.Hyperopia++
		case "astigmatism":
			stats.Astigmatism++
		default:
			stats.Normal++
		}
	}
	return stats, nil
}

type Demographics struct {
	Gender []repo.GenderCount   `json:"gender"`
	Age    []repo.AgeGroupCount `json:"age"`
}

func (s *AnalyticsService) Demographics(ctx context.Context) (*Demographics, error) {
	gender, err := s.Repo.GenderCounts(ctx)
	if err != nil {
		return nil, err
	}
	age, err := s.Repo.AgeGroupCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &Demographics{Gender: gender, Age: age}, nil
}

type DashboardStats struct {
	TotalCustomers    int64 `json:"totalCustomers"`
	LowStock          int64 `json:"lowStock"`
	AppointmentsToday int64 `json:"appointmentsToday"`
	AITests           int64 `json:"aiTests"`
}

const lowStockThreshold = 5

func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	customers, err := s.Repo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.Repo.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	appts, err := s.Repo.CountAppointmentsOn(ctx, today)
	if err != nil {
		return nil, err
	}
	tests, err := s.Repo.CountEyeTests(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCustomers:    customers,
		LowStock:          lowStock,
		AppointmentsToday: appts,
		AITests:           tests,
	}, nil
}
