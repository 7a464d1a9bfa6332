package festival

import (
	"context"
	"errors"
	"fmt"

	"github.com/festperfect/festperfect/internal/event_bus"
	"github.com/festperfect/festperfect/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrArtistNotFound = errors.New("artist slot not found")

type Service interface {
	CreateFestival(ctx context.Context, festival Festival) (Festival, error)
	CreateDemoFestival(ctx context.Context) (Festival, error)
	GetFestival(ctx context.Context, festivalID string) (Festival, error)
	DeleteFestival(ctx context.Context, festivalID string) (bool, error)
	CycleArtistPriority(ctx context.Context, festivalID, artistID string) (ArtistSlot, error)
	SetArtistPriority(ctx context.Context, festivalID, artistID string, priority Priority) (ArtistSlot, error)
	UpdateContactInfo(ctx context.Context, festivalID string, info ContactInfo) error
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(repo Repo, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock, bus: bus}
}

// CreateFestival validates the aggregate, fills in missing identifiers,
// stamps timestamps, and persists it. Festivals arrive whole (manual setup,
// demo generator, or an extraction draft) and are mutated afterwards only
// through priority and contact updates.
func (s *ServiceImpl) CreateFestival(ctx context.Context, festival Festival) (Festival, error) {
	if festival.ID == "" {
		festival.ID = uuid.NewString()
	}
	for i := range festival.Days {
		if festival.Days[i].ID == "" {
			festival.Days[i].ID = uuid.NewString()
		}
		for j := range festival.Days[i].Stages {
			if festival.Days[i].Stages[j].ID == "" {
				festival.Days[i].Stages[j].ID = uuid.NewString()
			}
		}
	}
	for i := range festival.Artists {
		if festival.Artists[i].ID == "" {
			festival.Artists[i].ID = uuid.NewString()
		}
		if festival.Artists[i].Priority == "" {
			festival.Artists[i].Priority = PriorityMaybe
		}
	}

	if err := validateFestival(festival); err != nil {
		return Festival{}, err
	}

	now := s.clock.Now()
	festival.CreatedAt = now
	festival.UpdatedAt = now

	if err := s.repo.Store(ctx, festival); err != nil {
		return Festival{}, fmt.Errorf("failed to store festival: %w", err)
	}
	log.Infof("created festival %s with %d days and %d artist slots", festival.ID, len(festival.Days), len(festival.Artists))
	return festival, nil
}

func (s *ServiceImpl) CreateDemoFestival(ctx context.Context) (Festival, error) {
	demo := DemoFestival(s.clock.Now())
	// Demo ids are fixed; regenerate the festival id so repeated demo
	// creations do not collide.
	demo.ID = uuid.NewString()
	return s.CreateFestival(ctx, demo)
}

func (s *ServiceImpl) GetFestival(ctx context.Context, festivalID string) (Festival, error) {
	return s.repo.Get(ctx, festivalID)
}

func (s *ServiceImpl) DeleteFestival(ctx context.Context, festivalID string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, festivalID)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("festival %s not deleted, probably because it does not exist", festivalID)
	}
	return deleted, nil
}

// CycleArtistPriority advances the slot through the fixed
// maybe -> must -> skip cycle and persists the result. Conflict and summary
// views are recomputed by callers after the mutation; nothing is cached.
func (s *ServiceImpl) CycleArtistPriority(ctx context.Context, festivalID, artistID string) (ArtistSlot, error) {
	festival, err := s.repo.Get(ctx, festivalID)
	if err != nil {
		return ArtistSlot{}, err
	}
	slot, ok := festival.FindArtist(artistID)
	if !ok {
		return ArtistSlot{}, ErrArtistNotFound
	}
	return s.setPriority(ctx, festival, slot, slot.Priority.Next())
}

func (s *ServiceImpl) SetArtistPriority(ctx context.Context, festivalID, artistID string, priority Priority) (ArtistSlot, error) {
	festival, err := s.repo.Get(ctx, festivalID)
	if err != nil {
		return ArtistSlot{}, err
	}
	slot, ok := festival.FindArtist(artistID)
	if !ok {
		return ArtistSlot{}, ErrArtistNotFound
	}
	return s.setPriority(ctx, festival, slot, priority)
}

func (s *ServiceImpl) setPriority(ctx context.Context, festival Festival, slot ArtistSlot, priority Priority) (ArtistSlot, error) {
	now := s.clock.Now()
	updated, err := s.repo.UpdateArtistPriority(ctx, festival.ID, slot.ID, priority, now)
	if err != nil {
		return ArtistSlot{}, fmt.Errorf("failed to update priority: %w", err)
	}
	if !updated {
		return ArtistSlot{}, ErrArtistNotFound
	}
	slot.Priority = priority

	for i := range festival.Artists {
		if festival.Artists[i].ID == slot.ID {
			festival.Artists[i].Priority = priority
		}
	}
	festival.UpdatedAt = now
	s.publishUpdated(ctx, festival)

	return slot, nil
}

func (s *ServiceImpl) UpdateContactInfo(ctx context.Context, festivalID string, info ContactInfo) error {
	updated, err := s.repo.UpdateContactInfo(ctx, festivalID, info, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to update contact info: %w", err)
	}
	if !updated {
		return ErrFestivalNotFound
	}
	return nil
}

func (s *ServiceImpl) publishUpdated(ctx context.Context, festival Festival) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.FestivalUpdated, festival)); err != nil {
		log.Warnf("failed to publish festival update event: %v", err)
	}
}

func validateFestival(festival Festival) error {
	if festival.Name == "" {
		return fmt.Errorf("festival name must not be empty")
	}
	if len(festival.Days) == 0 {
		return fmt.Errorf("festival must have at least one day")
	}

	stagesByDay := make(map[string]map[string]bool, len(festival.Days))
	for _, day := range festival.Days {
		if _, exists := stagesByDay[day.ID]; exists {
			return fmt.Errorf("duplicate day id %q", day.ID)
		}
		stages := make(map[string]bool, len(day.Stages))
		for _, stage := range day.Stages {
			if stages[stage.ID] {
				return fmt.Errorf("duplicate stage id %q on day %q", stage.ID, day.ID)
			}
			stages[stage.ID] = true
		}
		stagesByDay[day.ID] = stages
	}

	for _, slot := range festival.Artists {
		if slot.ArtistName == "" {
			return fmt.Errorf("artist slot %q has an empty artist name", slot.ID)
		}
		stages, ok := stagesByDay[slot.DayID]
		if !ok {
			return fmt.Errorf("artist slot %q references unknown day %q", slot.ID, slot.DayID)
		}
		if !stages[slot.StageID] {
			return fmt.Errorf("artist slot %q references unknown stage %q on day %q", slot.ID, slot.StageID, slot.DayID)
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			return fmt.Errorf("artist slot %q: %w", slot.ID, err)
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			return fmt.Errorf("artist slot %q: %w", slot.ID, err)
		}
		if start >= end {
			return fmt.Errorf("artist slot %q: start time %s is not before end time %s", slot.ID, slot.StartTime, slot.EndTime)
		}
		if _, err := ParsePriority(string(slot.Priority)); err != nil {
			return fmt.Errorf("artist slot %q: %w", slot.ID, err)
		}
	}

	return nil
}
