package festival

import (
	"time"
)

// Stage is a named performance area within a festival day.
type Stage struct {
	ID    string
	Name  string
	Color string
}

// ArtistSlot is one scheduled performance: an artist on a stage for a
// start-end wall-clock range within a single day.
type ArtistSlot struct {
	ID         string
	ArtistName string
	StageID    string
	StartTime  string // "HH:MM", 24-hour
	EndTime    string // "HH:MM", 24-hour
	Priority   Priority
	DayID      string
}

// FestivalDay groups the stages for one calendar date. Stage order is
// display order.
type FestivalDay struct {
	ID     string
	Date   string // ISO date, e.g. "2026-07-18"
	Stages []Stage
}

type ContactInfo struct {
	Name             string
	Phone            string
	AlternateContact string
}

// Festival is the aggregate root. It owns its days, stages, and artist
// slots; slot StageID/DayID are lookup references into the same aggregate.
type Festival struct {
	ID          string
	Name        string
	Days        []FestivalDay
	Artists     []ArtistSlot
	ContactInfo *ContactInfo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Day returns the day with the given id.
func (f *Festival) Day(dayID string) (FestivalDay, bool) {
	for _, d := range f.Days {
		if d.ID == dayID {
			return d, true
		}
	}
	return FestivalDay{}, false
}

// ArtistsForDay returns the slots scheduled on the given day, in input order.
func (f *Festival) ArtistsForDay(dayID string) []ArtistSlot {
	slots := make([]ArtistSlot, 0, len(f.Artists))
	for _, a := range f.Artists {
		if a.DayID == dayID {
			slots = append(slots, a)
		}
	}
	return slots
}

// FindArtist returns the slot with the given id.
func (f *Festival) FindArtist(artistID string) (ArtistSlot, bool) {
	for _, a := range f.Artists {
		if a.ID == artistID {
			return a, true
		}
	}
	return ArtistSlot{}, false
}
