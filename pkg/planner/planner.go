package planner

import (
	"errors"

	"github.com/festperfect/festperfect/pkg/festival"
)

var ErrDayNotFound = errors.New("festival day not found")

// SlotView is one artist slot with its derived conflict flag.
type SlotView struct {
	Slot     festival.ArtistSlot
	Conflict bool
}

// StageColumn is one stage's timeline for the day: its slots sorted by
// start time.
type StageColumn struct {
	Stage festival.Stage
	Slots []SlotView
}

// DayView is everything the planner screen needs for one day. It is derived
// from the festival snapshot on every request; nothing is cached, so the view
// can never be stale after a priority edit.
type DayView struct {
	DayID    string
	Date     string
	Stages   []StageColumn
	Summary  festival.Summary
	MinStart int
	MaxEnd   int
	// HasTimeBounds is false for a day without any scheduled slots;
	// MinStart/MaxEnd are meaningless then.
	HasTimeBounds bool
}

// BuildDayView assembles the planner view for the given day. An empty dayID
// selects the festival's first day.
func BuildDayView(f festival.Festival, dayID string) (DayView, error) {
	if dayID == "" {
		if len(f.Days) == 0 {
			return DayView{}, ErrDayNotFound
		}
		dayID = f.Days[0].ID
	}
	day, ok := f.Day(dayID)
	if !ok {
		return DayView{}, ErrDayNotFound
	}

	daySlots := f.ArtistsForDay(day.ID)

	stages := make([]StageColumn, 0, len(day.Stages))
	for _, stage := range day.Stages {
		stageSlots := festival.ByStage(daySlots, stage.ID)
		views := make([]SlotView, 0, len(stageSlots))
		for _, slot := range stageSlots {
			views = append(views, SlotView{
				Slot:     slot,
				Conflict: festival.HasConflict(slot, daySlots),
			})
		}
		stages = append(stages, StageColumn{Stage: stage, Slots: views})
	}

	view := DayView{
		DayID:   day.ID,
		Date:    day.Date,
		Stages:  stages,
		Summary: festival.Summarize(daySlots),
	}
	view.MinStart, view.MaxEnd, view.HasTimeBounds = festival.DayTimeBounds(daySlots)
	return view, nil
}
