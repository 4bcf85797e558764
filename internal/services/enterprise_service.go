package services

import (
	"context"

	json "github.com/goccy/go-json"

	"camsd/internal/models"
	"camsd/internal/providers"
	"camsd/internal/upstream"
)

type EnterpriseServiceInterface interface {
	Leaves(ctx context.Context, userID string) ([]models.Leave, error)
	LeaveBalance(ctx context.Context, userID string) (*models.LeaveBalance, error)
	Reimbursements(ctx context.Context, userID string) ([]models.Reimbursement, error)
	Settings(ctx context.Context) (map[string]any, error)
}

// EnterpriseService is a thin typed pass-through for the JSON enterprise
// resources next to the attendance export: leaves, reimbursements and the
// org-wide settings document.
type EnterpriseService struct {
	logger providers.Logger
	client upstream.ClientInterface
}

func NewEnterpriseService(logger providers.Logger, client upstream.ClientInterface) EnterpriseServiceInterface {
	return &EnterpriseService{
		logger: logger,
		client: client,
	}
}

func (s *EnterpriseService) Leaves(ctx context.Context, userID string) ([]models.Leave, error) {
	payload, err := s.client.FetchLeaves(ctx, userID)
	if err != nil {
		return nil, err
	}
	var leaves []models.Leave
	if err := json.Unmarshal(payload, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (s *EnterpriseService) LeaveBalance(ctx context.Context, userID string) (*models.LeaveBalance, error) {
	payload, err := s.client.FetchLeaveBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	var balance models.LeaveBalance
	if err := json.Unmarshal(payload, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (s *EnterpriseService) Reimbursements(ctx context.Context, userID string) ([]models.Reimbursement, error) {
	payload, err := s.client.FetchReimbursements(ctx, userID)
	if err != nil {
		return nil, err
	}
	var claims []models.Reimbursement
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Settings keeps the document schemaless: the upstream adds keys without
// notice and clients only ever pass them through.
func (s *EnterpriseService) Settings(ctx context.Context) (map[string]any, error) {
	payload, err := s.client.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}
	var settings map[string]any
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
