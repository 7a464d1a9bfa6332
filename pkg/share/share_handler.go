package share

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SharedPlanDTO struct {
	ShareID    string               `json:"shareId"`
	FestivalID string               `json:"festivalId"`
	Festival   festival.FestivalDTO `json:"festival"`
	CreatedAt  time.Time            `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating share link")
	w.Header().Set("Content-Type", "application/json")
	festivalID := mux.Vars(r)["festivalId"]

	plan, err := h.service.CreateShareLink(r.Context(), festivalID)
	if err != nil {
		if errors.Is(err, festival.ErrFestivalNotFound) {
			http.Error(w, "Festival not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SharedPlanToDTO(plan)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetSharedPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	shareID := mux.Vars(r)["shareId"]

	plan, err := h.service.GetSharedPlan(r.Context(), shareID)
	if err != nil {
		if errors.Is(err, ErrShareNotFound) {
			http.Error(w, "Shared plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SharedPlanToDTO(plan)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SharedPlanToDTO(plan SharedPlan) SharedPlanDTO {
	return SharedPlanDTO{
		ShareID:    plan.ShareID,
		FestivalID: plan.FestivalID,
		Festival:   festival.FestivalToDTO(plan.Snapshot),
		CreatedAt:  plan.CreatedAt,
	}
}
