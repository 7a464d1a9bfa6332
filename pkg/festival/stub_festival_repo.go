package festival

import (
	"context"
	"time"
)

type StubFestivalRepo struct {
	data map[string]Festival
}

func NewStubFestivalRepo() *StubFestivalRepo {
	return &StubFestivalRepo{data: map[string]Festival{}}
}

func (s *StubFestivalRepo) Store(ctx context.Context, festival Festival) error {
	s.data[festival.ID] = festival
	return nil
}

func (s *StubFestivalRepo) Get(ctx context.Context, festivalID string) (Festival, error) {
	festival, ok := s.data[festivalID]
	if !ok {
		return Festival{}, ErrFestivalNotFound
	}
	return festival, nil
}

func (s *StubFestivalRepo) Delete(ctx context.Context, festivalID string) (bool, error) {
	if _, ok := s.data[festivalID]; !ok {
		return false, nil
	}
	delete(s.data, festivalID)
	return true, nil
}

func (s *StubFestivalRepo) UpdateArtistPriority(ctx context.Context, festivalID, artistID string, priority Priority, updatedAt time.Time) (bool, error) {
	festival, ok := s.data[festivalID]
	if !ok {
		return false, nil
	}
	for i, slot := range festival.Artists {
		if slot.ID == artistID {
			festival.Artists[i].Priority = priority
			festival.UpdatedAt = updatedAt
			s.data[festivalID] = festival
			return true, nil
		}
	}
	return false, nil
}

func (s *StubFestivalRepo) UpdateContactInfo(ctx context.Context, festivalID string, info ContactInfo, updatedAt time.Time) (bool, error) {
	festival, ok := s.data[festivalID]
	if !ok {
		return false, nil
	}
	festival.ContactInfo = &info
	festival.UpdatedAt = updatedAt
	s.data[festivalID] = festival
	return true, nil
}

func (s *StubFestivalRepo) Cleanup() {
	s.data = map[string]Festival{}
}
