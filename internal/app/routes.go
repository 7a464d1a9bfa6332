package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Festival
	r.HandleFunc("/api/festival", deps.FestivalHandler.CreateFestival).Methods("POST")
	r.HandleFunc("/api/festival/demo", deps.FestivalHandler.CreateDemoFestival).Methods("POST")
	r.HandleFunc("/api/festival/{festivalId}", deps.FestivalHandler.GetFestival).Methods("GET")
	r.HandleFunc("/api/festival/{festivalId}", deps.FestivalHandler.DeleteFestival).Methods("DELETE")
	r.HandleFunc("/api/festival/{festivalId}/artist/{artistId}/priority", deps.FestivalHandler.UpdateArtistPriority).Methods("POST")
	r.HandleFunc("/api/festival/{festivalId}/contact", deps.FestivalHandler.UpdateContactInfo).Methods("PUT")

	// Planner
	r.HandleFunc("/api/festival/{festivalId}/schedule", deps.PlannerHandler.GetDayView).Methods("GET")

	// Sharing
	r.HandleFunc("/api/festival/{festivalId}/share", deps.ShareHandler.CreateShareLink).Methods("POST")
	r.HandleFunc("/api/share/{shareId}", deps.ShareHandler.GetSharedPlan).Methods("GET")

	// Wallpaper
	r.HandleFunc("/api/wallpaper/devices", deps.WallpaperHandler.GetDevices).Methods("GET")
	r.HandleFunc("/api/festival/{festivalId}/wallpaper", deps.WallpaperHandler.GetWallpaper).Methods("GET")
	r.HandleFunc("/api/festival/{festivalId}/wallpaper/preview", deps.WallpaperHandler.GetWallpaperPreview).Methods("GET")

	// Lineup extraction
	r.HandleFunc("/api/extract", deps.ExtractHandler.ExtractLineup).Methods("POST")
}
