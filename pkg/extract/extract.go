package extract

import (
	"strings"
	"time"

	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/google/uuid"
)

// ExtractedLineup is the raw lineup structure recovered from a poster image.
// Every field except artist names may be missing.
type ExtractedLineup struct {
	FestivalName string           `json:"festivalName"`
	Date         string           `json:"date"`
	Stages       []ExtractedStage `json:"stages"`
}

type ExtractedStage struct {
	Name    string            `json:"name"`
	Artists []ExtractedArtist `json:"artists"`
}

type ExtractedArtist struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

var stageColors = []string{"#e11d48", "#7c3aed", "#059669", "#d97706", "#0284c7", "#db2777"}

// ToFestival converts an extracted lineup into a draft festival. Missing
// values get placeholders the user can correct in the planner.
func ToFestival(lineup ExtractedLineup, now time.Time) festival.Festival {
	name := lineup.FestivalName
	if name == "" {
		name = "Imported Festival"
	}
	date := lineup.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	dayID := uuid.New().String()
	stages := make([]festival.Stage, 0, len(lineup.Stages))
	artists := make([]festival.ArtistSlot, 0)
	for i, extractedStage := range lineup.Stages {
		stageName := extractedStage.Name
		if stageName == "" {
			stageName = "Main Stage"
		}
		stage := festival.Stage{
			ID:    uuid.New().String(),
			Name:  stageName,
			Color: stageColors[i%len(stageColors)],
		}
		stages = append(stages, stage)

		for _, artist := range extractedStage.Artists {
			if artist.Name == "" {
				continue
			}
			startTime := artist.StartTime
			endTime := artist.EndTime
			if _, err := festival.ParseClock(startTime); err != nil {
				startTime = "12:00"
			}
			if _, err := festival.ParseClock(endTime); err != nil {
				endTime = "13:00"
			}
			artists = append(artists, festival.ArtistSlot{
				ID:         uuid.New().String(),
				ArtistName: artist.Name,
				StageID:    stage.ID,
				StartTime:  startTime,
				EndTime:    endTime,
				Priority:   festival.PriorityMaybe,
				DayID:      dayID,
			})
		}
	}

	return festival.Festival{
		ID:   uuid.New().String(),
		Name: name,
		Days: []festival.FestivalDay{
			{ID: dayID, Date: date, Stages: stages},
		},
		Artists: artists,
	}
}

// stripJSONFence removes a markdown code fence wrapper that vision models
// sometimes emit around the JSON payload.
func stripJSONFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
