package wallpaper

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeviceSizeDTO struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetDevices lists the supported lock-screen resolutions.
func (h *Handler) GetDevices(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	dtos := make([]DeviceSizeDTO, 0, len(DeviceSizes))
	for _, device := range DeviceSizes {
		dtos = append(dtos, DeviceSizeToDTO(device))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// GetWallpaper renders the schedule wallpaper PNG for one festival day.
func (h *Handler) GetWallpaper(w http.ResponseWriter, r *http.Request) {
	festivalID := mux.Vars(r)["festivalId"]
	dayID := r.URL.Query().Get("dayId")
	deviceName := r.URL.Query().Get("device")

	png, device, err := h.service.RenderWallpaper(r.Context(), festivalID, dayID, deviceName)
	if err != nil {
		h.writeError(w, err, "Failed to render wallpaper")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+festivalID+"-"+device.Name+`.png"`)
	if _, err := w.Write(png); err != nil {
		log.Errorf("Failed to write wallpaper response: %v", err)
	}
}

// GetWallpaperPreview returns the wallpaper layout as HTML for in-browser preview.
func (h *Handler) GetWallpaperPreview(w http.ResponseWriter, r *http.Request) {
	festivalID := mux.Vars(r)["festivalId"]
	dayID := r.URL.Query().Get("dayId")
	deviceName := r.URL.Query().Get("device")

	html, err := h.service.PreviewHTML(r.Context(), festivalID, dayID, deviceName)
	if err != nil {
		h.writeError(w, err, "Failed to build wallpaper preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Errorf("Failed to write wallpaper preview response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, festival.ErrFestivalNotFound):
		http.Error(w, "Festival not found", http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound):
		http.Error(w, "Festival day not found", http.StatusNotFound)
	case errors.Is(err, ErrUnknownDevice):
		http.Error(w, "Unknown device size", http.StatusBadRequest)
	default:
		log.Errorf("%s: %v", fallback, err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func DeviceSizeToDTO(device DeviceSize) DeviceSizeDTO {
	return DeviceSizeDTO{
		Name:   device.Name,
		Width:  device.Width,
		Height: device.Height,
		Label:  device.Label,
	}
}
