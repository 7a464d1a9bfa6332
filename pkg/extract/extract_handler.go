package extract

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/festperfect/festperfect/pkg/festival"
	log "github.com/sirupsen/logrus"
)

// maxImageSize caps uploaded poster images at 10 MiB.
const maxImageSize = 10 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ExtractLineup accepts a multipart poster image upload and responds with a
// draft festival recovered from it.
func (h *Handler) ExtractLineup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		http.Error(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		log.Errorf("Failed to read uploaded image: %v", err)
		http.Error(w, "Failed to read uploaded image", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}

	draft, err := h.service.ExtractFestival(r.Context(), image, contentType)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedImage):
			http.Error(w, "Unsupported image type", http.StatusBadRequest)
		case errors.Is(err, ErrExtractorDisabled):
			http.Error(w, "Lineup extraction is not configured", http.StatusServiceUnavailable)
		default:
			log.Errorf("Failed to extract lineup: %v", err)
			http.Error(w, "Failed to extract lineup", http.StatusInternalServerError)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(festival.FestivalToDTO(draft)); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
