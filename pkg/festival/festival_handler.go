package festival

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StageDTO struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type ArtistSlotDTO struct {
	ID         string `json:"id,omitempty"`
	ArtistName string `json:"artistName"`
	StageID    string `json:"stageId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Priority   string `json:"priority,omitempty"`
	DayID      string `json:"dayId"`
}

type FestivalDayDTO struct {
	ID     string     `json:"id,omitempty"`
	Date   string     `json:"date"`
	Stages []StageDTO `json:"stages"`
}

type ContactInfoDTO struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	AlternateContact string `json:"alternateContact,omitempty"`
}

type FestivalDTO struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name"`
	Days        []FestivalDayDTO `json:"days"`
	Artists     []ArtistSlotDTO  `json:"artists"`
	ContactInfo *ContactInfoDTO  `json:"contactInfo,omitempty"`
	CreatedAt   *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateFestival(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new festival")
	w.Header().Set("Content-Type", "application/json")

	var festivalDTO FestivalDTO
	if err := json.NewDecoder(r.Body).Decode(&festivalDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateFestival(r.Context(), DTOToFestival(festivalDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(FestivalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateDemoFestival(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating demo festival")
	w.Header().Set("Content-Type", "application/json")

	created, err := h.service.CreateDemoFestival(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(FestivalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetFestival(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	festivalID := mux.Vars(r)["festivalId"]

	festival, err := h.service.GetFestival(r.Context(), festivalID)
	if err != nil {
		if errors.Is(err, ErrFestivalNotFound) {
			http.Error(w, "Festival not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(FestivalToDTO(festival)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteFestival(w http.ResponseWriter, r *http.Request) {
	festivalID := mux.Vars(r)["festivalId"]

	deleted, err := h.service.DeleteFestival(r.Context(), festivalID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Festival not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateArtistPriority cycles the slot's priority, or sets it directly when
// the request body names one.
func (h *Handler) UpdateArtistPriority(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	festivalID := vars["festivalId"]
	artistID := vars["artistId"]

	var priorityDTO struct {
		Priority string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&priorityDTO); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var slot ArtistSlot
	var err error
	if priorityDTO.Priority == "" {
		slot, err = h.service.CycleArtistPriority(r.Context(), festivalID, artistID)
	} else {
		var priority Priority
		priority, err = ParsePriority(priorityDTO.Priority)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slot, err = h.service.SetArtistPriority(r.Context(), festivalID, artistID, priority)
	}
	if err != nil {
		if errors.Is(err, ErrFestivalNotFound) || errors.Is(err, ErrArtistNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ArtistSlotToDTO(slot)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	festivalID := mux.Vars(r)["festivalId"]

	var contactDTO ContactInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&contactDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if contactDTO.Name == "" || contactDTO.Phone == "" {
		http.Error(w, "Contact name and phone are required", http.StatusBadRequest)
		return
	}

	err := h.service.UpdateContactInfo(r.Context(), festivalID, ContactInfo{
		Name:             contactDTO.Name,
		Phone:            contactDTO.Phone,
		AlternateContact: contactDTO.AlternateContact,
	})
	if err != nil {
		if errors.Is(err, ErrFestivalNotFound) {
			http.Error(w, "Festival not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(contactDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func FestivalToDTO(festival Festival) FestivalDTO {
	days := make([]FestivalDayDTO, 0, len(festival.Days))
	for _, day := range festival.Days {
		stages := make([]StageDTO, 0, len(day.Stages))
		for _, stage := range day.Stages {
			stages = append(stages, StageDTO{ID: stage.ID, Name: stage.Name, Color: stage.Color})
		}
		days = append(days, FestivalDayDTO{ID: day.ID, Date: day.Date, Stages: stages})
	}
	artists := make([]ArtistSlotDTO, 0, len(festival.Artists))
	for _, slot := range festival.Artists {
		artists = append(artists, ArtistSlotToDTO(slot))
	}

	dto := FestivalDTO{
		ID:      festival.ID,
		Name:    festival.Name,
		Days:    days,
		Artists: artists,
	}
	if festival.ContactInfo != nil {
		dto.ContactInfo = &ContactInfoDTO{
			Name:             festival.ContactInfo.Name,
			Phone:            festival.ContactInfo.Phone,
			AlternateContact: festival.ContactInfo.AlternateContact,
		}
	}
	if !festival.CreatedAt.IsZero() {
		createdAt := festival.CreatedAt
		dto.CreatedAt = &createdAt
	}
	if !festival.UpdatedAt.IsZero() {
		updatedAt := festival.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

func ArtistSlotToDTO(slot ArtistSlot) ArtistSlotDTO {
	return ArtistSlotDTO{
		ID:         slot.ID,
		ArtistName: slot.ArtistName,
		StageID:    slot.StageID,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Priority:   string(slot.Priority),
		DayID:      slot.DayID,
	}
}

func DTOToFestival(dto FestivalDTO) Festival {
	days := make([]FestivalDay, 0, len(dto.Days))
	for _, day := range dto.Days {
		stages := make([]Stage, 0, len(day.Stages))
		for _, stage := range day.Stages {
			stages = append(stages, Stage{ID: stage.ID, Name: stage.Name, Color: stage.Color})
		}
		days = append(days, FestivalDay{ID: day.ID, Date: day.Date, Stages: stages})
	}
	artists := make([]ArtistSlot, 0, len(dto.Artists))
	for _, slot := range dto.Artists {
		artists = append(artists, ArtistSlot{
			ID:         slot.ID,
			ArtistName: slot.ArtistName,
			StageID:    slot.StageID,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			Priority:   Priority(slot.Priority),
			DayID:      slot.DayID,
		})
	}

	festival := Festival{
		ID:      dto.ID,
		Name:    dto.Name,
		Days:    days,
		Artists: artists,
	}
	if dto.ContactInfo != nil {
		festival.ContactInfo = &ContactInfo{
			Name:             dto.ContactInfo.Name,
			Phone:            dto.ContactInfo.Phone,
			AlternateContact: dto.ContactInfo.AlternateContact,
		}
	}
	return festival
}
