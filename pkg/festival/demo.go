package festival

import (
	"time"
)

const demoDayID = "demo-day-1"

// DemoFestival builds the sample single-day festival used to showcase the
// planner without any setup. The festival date is one month out from now.
func DemoFestival(now time.Time) Festival {
	date := now.AddDate(0, 0, 30).Format("2006-01-02")

	stages := []Stage{
		{ID: "stage-1", Name: "Main Stage", Color: "#3b82f6"},
		{ID: "stage-2", Name: "Left Foot Stage", Color: "#8b5cf6"},
		{ID: "stage-3", Name: "The Grove", Color: "#10b981"},
		{ID: "stage-4", Name: "Silent Disco", Color: "#f59e0b"},
	}

	artists := []ArtistSlot{
		{ID: "a1", ArtistName: "The Midnight Runners", StageID: "stage-1", StartTime: "14:00", EndTime: "15:00", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a2", ArtistName: "Electric Sunrise", StageID: "stage-2", StartTime: "14:00", EndTime: "14:45", Priority: PrioritySkip, DayID: demoDayID},
		{ID: "a3", ArtistName: "Luna & The Waves", StageID: "stage-3", StartTime: "14:30", EndTime: "15:30", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a4", ArtistName: "DJ Neon Dreams", StageID: "stage-4", StartTime: "14:00", EndTime: "16:00", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a5", ArtistName: "The Velvet Underground Revival", StageID: "stage-1", StartTime: "15:30", EndTime: "16:30", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a6", ArtistName: "Cosmic Funk Collective", StageID: "stage-2", StartTime: "15:15", EndTime: "16:15", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a7", ArtistName: "Indie Hearts", StageID: "stage-3", StartTime: "16:00", EndTime: "17:00", Priority: PrioritySkip, DayID: demoDayID},
		{ID: "a8", ArtistName: "Bass Rebel Sound System", StageID: "stage-1", StartTime: "17:00", EndTime: "18:00", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a9", ArtistName: "The Analog Kids", StageID: "stage-2", StartTime: "16:45", EndTime: "17:45", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a10", ArtistName: "Sunset Groove", StageID: "stage-3", StartTime: "17:30", EndTime: "18:30", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a11", ArtistName: "Silent Storm DJ Set", StageID: "stage-4", StartTime: "16:30", EndTime: "18:30", Priority: PrioritySkip, DayID: demoDayID},
		{ID: "a12", ArtistName: "Phoenix Rising", StageID: "stage-1", StartTime: "18:30", EndTime: "19:45", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a13", ArtistName: "Retro Wave", StageID: "stage-2", StartTime: "18:15", EndTime: "19:15", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a14", ArtistName: "The Wildcards", StageID: "stage-3", StartTime: "19:00", EndTime: "20:00", Priority: PrioritySkip, DayID: demoDayID},
		{ID: "a15", ArtistName: "Starlight Symphony", StageID: "stage-1", StartTime: "20:15", EndTime: "21:45", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a16", ArtistName: "Electronic Dreams", StageID: "stage-2", StartTime: "19:45", EndTime: "20:45", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a17", ArtistName: "The Last Call", StageID: "stage-3", StartTime: "20:30", EndTime: "21:30", Priority: PriorityMaybe, DayID: demoDayID},
		{ID: "a18", ArtistName: "Late Night Vibes", StageID: "stage-4", StartTime: "19:00", EndTime: "22:00", Priority: PrioritySkip, DayID: demoDayID},
		{ID: "a19", ArtistName: "Headline Act Supreme", StageID: "stage-1", StartTime: "22:00", EndTime: "23:30", Priority: PriorityMust, DayID: demoDayID},
		{ID: "a20", ArtistName: "After Hours Collective", StageID: "stage-2", StartTime: "21:15", EndTime: "22:30", Priority: PriorityMaybe, DayID: demoDayID},
	}

	return Festival{
		ID:   "demo-festival",
		Name: "Summer Sounds Festival 2025",
		Days: []FestivalDay{
			{ID: demoDayID, Date: date, Stages: stages},
		},
		Artists: artists,
		ContactInfo: &ContactInfo{
			Name:             "Your Name",
			Phone:            "+1 (555) 123-4567",
			AlternateContact: "friend@example.com",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
