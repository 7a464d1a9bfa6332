package share

import (
	"context"
	"fmt"

	"github.com/festperfect/festperfect/internal/utils"
	"github.com/festperfect/festperfect/pkg/festival"
	log "github.com/sirupsen/logrus"
)

// FestivalProvider supplies the festival to snapshot. Matches
// festival.Service.GetFestival.
type FestivalProvider func(ctx context.Context, festivalID string) (festival.Festival, error)

type Service interface {
	CreateShareLink(ctx context.Context, festivalID string) (SharedPlan, error)
	GetSharedPlan(ctx context.Context, shareID string) (SharedPlan, error)
}

type ServiceImpl struct {
	repo             Repo
	festivalProvider FestivalProvider
	clock            utils.Clock
}

func NewService(repo Repo, festivalProvider FestivalProvider, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, festivalProvider: festivalProvider, clock: clock}
}

// CreateShareLink snapshots the festival as it is right now under a fresh
// share token. Each call issues a new token; existing tokens keep serving
// the plan they captured.
func (s *ServiceImpl) CreateShareLink(ctx context.Context, festivalID string) (SharedPlan, error) {
	f, err := s.festivalProvider(ctx, festivalID)
	if err != nil {
		return SharedPlan{}, err
	}

	shareID, err := NewShareID()
	if err != nil {
		return SharedPlan{}, err
	}

	plan := SharedPlan{
		ShareID:    shareID,
		FestivalID: f.ID,
		Snapshot:   f,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.repo.Store(ctx, plan); err != nil {
		return SharedPlan{}, fmt.Errorf("failed to store shared plan: %w", err)
	}
	log.Infof("created share link %s for festival %s", shareID, f.ID)
	return plan, nil
}

func (s *ServiceImpl) GetSharedPlan(ctx context.Context, shareID string) (SharedPlan, error) {
	return s.repo.Get(ctx, shareID)
}
