package service

import (
	"context"
	"encoding/json"

	"github.com/visionx-optics/visionx-server/internal/ai"
	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type EyeTestService struct {
	Repo *repo.GormRepo
	AI   *ai.Client
}

func (s *EyeTestService) List(ctx context.Context) ([]repo.EyeTestRow, error) {
	return s.Repo.ListEyeTests(ctx)
}

// Record stores the results payload verbatim. Both the manual flow and
// the client-side AI flow post here; the server does not validate the
// blob's internal shape.
func (s *EyeTestService) Record(ctx context.Context, req transport.CreateEyeTestRequest) (*models.EyeTest, error) {
	if req.CustomerID == 0 {
		return nil, ErrValidation
	}
	if len(req.Results) > 0 && !json.Valid(req.Results) {
		return nil, ErrValidation
	}

	test := models.EyeTest{
		CustomerID: req.CustomerID,
		Results:    string(req.Results),
		ImageURL:   req.ImageURL,
	}
	if err := s.Repo.CreateEyeTest(ctx, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// Diagnose runs the AI collaborator first and only touches the store
// once a result is in hand, so no lock or transaction spans the call.
// On any collaborator failure nothing is persisted.
func (s *EyeTestService) Diagnose(ctx context.Context, req transport.DiagnoseRequest) (*models.EyeTest, *ai.DiagnosisResult, error) {
	l := logging.FromContext(ctx).With("svc", "eyetests.diagnose")

	if req.CustomerID == 0 || req.Image == "" {
		return nil, nil, ErrValidation
	}

	result, err := s.AI.Diagnose(ctx, req.Image, req.MimeType)
	if err != nil {
		l.Warn("diagnosis failed", "customer_id", req.CustomerID, "error", err)
		return nil, nil, err
	}

	blob, err := json.Marshal(result)
	if err != nil {
		return nil, nil, err
	}

	test := models.EyeTest{
		CustomerID: req.CustomerID,
		Results:    string(blob),
		ImageURL:   req.ImageURL,
	}
	if err := s.Repo.CreateEyeTest(ctx, &test); err != nil {
		return nil, nil, err
	}

	l.Info("diagnosis stored", "customer_id", req.CustomerID, "test_id", test.ID)
	return &test, result, nil
}
