package planner

import (
	"context"

	"github.com/festperfect/festperfect/pkg/festival"
)

// FestivalProvider supplies the festival snapshot the day view is derived
// from. Matches festival.Service.GetFestival.
type FestivalProvider func(ctx context.Context, festivalID string) (festival.Festival, error)

type Service interface {
	GetDayView(ctx context.Context, festivalID, dayID string) (DayView, error)
}

type ServiceImpl struct {
	festivalProvider FestivalProvider
}

func NewService(festivalProvider FestivalProvider) *ServiceImpl {
	return &ServiceImpl{festivalProvider: festivalProvider}
}

func (s *ServiceImpl) GetDayView(ctx context.Context, festivalID, dayID string) (DayView, error) {
	f, err := s.festivalProvider(ctx, festivalID)
	if err != nil {
		return DayView{}, err
	}
	return BuildDayView(f, dayID)
}
