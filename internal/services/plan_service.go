package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"tripagent/internal/models/trip_models"
	mem "tripagent/pkg/memcache"
	"tripagent/pkg/utils"
)

// MaxPromptLength caps the free-text request accepted from drivers, in runes.
const MaxPromptLength = 2000

// PlanServiceInterface is what drivers call: it validates input, runs the
// planner and remembers recent results.
type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, prompt string) (*trip_models.PlanningState, error)
	GetPlan(ctx context.Context, planID string) (*trip_models.PlanningState, error)
	ListPlans(ctx context.Context, limit int) []*trip_models.PlanningState
}

func NewPlanService(planner PlannerServiceInterface, history mem.PlanHistoryStore) PlanServiceInterface {
	return &PlanService{
		planner: planner,
		history: history,
	}
}

type PlanService struct {
	planner PlannerServiceInterface
	history mem.PlanHistoryStore
}

func (p *PlanService) CreatePlan(ctx context.Context, prompt string) (*trip_models.PlanningState, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, utils.ErrEmptyPrompt
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return nil, utils.ErrPromptTooLong
	}

	state := p.planner.Run(ctx, prompt)
	p.history.Set(state)

	return state, nil
}

func (p *PlanService) GetPlan(ctx context.Context, planID string) (*trip_models.PlanningState, error) {
	if strings.TrimSpace(planID) == "" {
		return nil, utils.ErrInvalidInput
	}

	state, ok := p.history.Get(planID)
	if !ok {
		return nil, utils.ErrPlanNotFound
	}
	return state, nil
}

func (p *PlanService) ListPlans(ctx context.Context, limit int) []*trip_models.PlanningState {
	return p.history.Recent(limit)
}
