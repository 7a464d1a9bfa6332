package planner

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/gorilla/mux"
)

type SlotViewDTO struct {
	ID         string `json:"id"`
	ArtistName string `json:"artistName"`
	StageID    string `json:"stageId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Priority   string `json:"priority"`
	Conflict   bool   `json:"conflict"`
}

type StageColumnDTO struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Color string        `json:"color,omitempty"`
	Slots []SlotViewDTO `json:"slots"`
}

type SummaryDTO struct {
	MustCount  int `json:"mustCount"`
	MaybeCount int `json:"maybeCount"`
	SkipCount  int `json:"skipCount"`
	Total      int `json:"total"`
}

type DayViewDTO struct {
	DayID   string           `json:"dayId"`
	Date    string           `json:"date"`
	Stages  []StageColumnDTO `json:"stages"`
	Summary SummaryDTO       `json:"summary"`
	// MinStart/MaxEnd are minutes since midnight; omitted for an empty day.
	MinStart *int `json:"minStart,omitempty"`
	MaxEnd   *int `json:"maxEnd,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetDayView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	festivalID := mux.Vars(r)["festivalId"]
	dayID := r.URL.Query().Get("dayId")

	view, err := h.service.GetDayView(r.Context(), festivalID, dayID)
	if err != nil {
		if errors.Is(err, festival.ErrFestivalNotFound) || errors.Is(err, ErrDayNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(DayViewToDTO(view)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func DayViewToDTO(view DayView) DayViewDTO {
	stages := make([]StageColumnDTO, 0, len(view.Stages))
	for _, column := range view.Stages {
		slots := make([]SlotViewDTO, 0, len(column.Slots))
		for _, sv := range column.Slots {
			slots = append(slots, SlotViewDTO{
				ID:         sv.Slot.ID,
				ArtistName: sv.Slot.ArtistName,
				StageID:    sv.Slot.StageID,
				StartTime:  sv.Slot.StartTime,
				EndTime:    sv.Slot.EndTime,
				Priority:   string(sv.Slot.Priority),
				Conflict:   sv.Conflict,
			})
		}
		stages = append(stages, StageColumnDTO{
			ID:    column.Stage.ID,
			Name:  column.Stage.Name,
			Color: column.Stage.Color,
			Slots: slots,
		})
	}

	dto := DayViewDTO{
		DayID:  view.DayID,
		Date:   view.Date,
		Stages: stages,
		Summary: SummaryDTO{
			MustCount:  view.Summary.MustCount,
			MaybeCount: view.Summary.MaybeCount,
			SkipCount:  view.Summary.SkipCount,
			Total:      view.Summary.Total,
		},
	}
	if view.HasTimeBounds {
		minStart := view.MinStart
		maxEnd := view.MaxEnd
		dto.MinStart = &minStart
		dto.MaxEnd = &maxEnd
	}
	return dto
}
