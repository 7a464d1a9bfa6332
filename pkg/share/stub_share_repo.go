package share

import (
	"context"
	"encoding/json"

	"github.com/festperfect/festperfect/pkg/festival"
)

type StubShareRepo struct {
	data map[string]SharedPlan
}

func NewStubShareRepo() *StubShareRepo {
	return &StubShareRepo{data: map[string]SharedPlan{}}
}

func (s *StubShareRepo) Store(ctx context.Context, plan SharedPlan) error {
	// Deep-copy through JSON so the stored snapshot is as immutable as the
	// database-backed one.
	raw, err := json.Marshal(festival.FestivalToDTO(plan.Snapshot))
	if err != nil {
		return err
	}
	var dto festival.FestivalDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return err
	}
	plan.Snapshot = festival.DTOToFestival(dto)
	s.data[plan.ShareID] = plan
	return nil
}

func (s *StubShareRepo) Get(ctx context.Context, shareID string) (SharedPlan, error) {
	plan, ok := s.data[shareID]
	if !ok {
		return SharedPlan{}, ErrShareNotFound
	}
	return plan, nil
}
