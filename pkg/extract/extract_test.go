package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/festperfect/festperfect/internal/utils"
	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/stretchr/testify/assert"
)

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"plain json", `{"stages":[]}`, `{"stages":[]}`},
		{"json fence", "```json\n{\"stages\":[]}\n```", `{"stages":[]}`},
		{"bare fence", "```\n{\"stages\":[]}\n```", `{"stages":[]}`},
		{"surrounding whitespace", "  {\"stages\":[]}\n", `{"stages":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripJSONFence(tt.content))
		})
	}
}

func TestToFestival(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("maps stages and artists with defaults", func(t *testing.T) {
		lineup := ExtractedLineup{
			FestivalName: "Summersound",
			Date:         "2026-07-10",
			Stages: []ExtractedStage{
				{
					Name: "Main Stage",
					Artists: []ExtractedArtist{
						{Name: "Night Owls", StartTime: "21:00", EndTime: "22:00"},
						{Name: "No Times Act"},
					},
				},
				{
					Artists: []ExtractedArtist{{Name: "Grove Act", StartTime: "18:00", EndTime: "19:00"}},
				},
			},
		}

		f := ToFestival(lineup, now)

		assert.Equal(t, "Summersound", f.Name)
		assert.NotEmpty(t, f.ID)
		assert.Len(t, f.Days, 1)
		assert.Equal(t, "2026-07-10", f.Days[0].Date)
		assert.Len(t, f.Days[0].Stages, 2)
		assert.Equal(t, "Main Stage", f.Days[0].Stages[0].Name)
		assert.Equal(t, "Main Stage", f.Days[0].Stages[1].Name)
		assert.NotEqual(t, f.Days[0].Stages[0].ID, f.Days[0].Stages[1].ID)

		assert.Len(t, f.Artists, 3)
		for _, slot := range f.Artists {
			assert.Equal(t, festival.PriorityMaybe, slot.Priority)
			assert.Equal(t, f.Days[0].ID, slot.DayID)
		}
		assert.Equal(t, "21:00", f.Artists[0].StartTime)
		assert.Equal(t, "12:00", f.Artists[1].StartTime)
		assert.Equal(t, "13:00", f.Artists[1].EndTime)
		assert.Equal(t, f.Days[0].Stages[1].ID, f.Artists[2].StageID)
	})

	t.Run("empty lineup falls back to placeholders", func(t *testing.T) {
		f := ToFestival(ExtractedLineup{}, now)

		assert.Equal(t, "Imported Festival", f.Name)
		assert.Len(t, f.Days, 1)
		assert.Equal(t, "2026-07-01", f.Days[0].Date)
		assert.Empty(t, f.Artists)
	})

	t.Run("artists without names are dropped", func(t *testing.T) {
		lineup := ExtractedLineup{
			Stages: []ExtractedStage{{Artists: []ExtractedArtist{{StartTime: "12:00"}}}},
		}

		f := ToFestival(lineup, now)

		assert.Empty(t, f.Artists)
	})
}

type stubClient struct {
	lineup      ExtractedLineup
	err         error
	lastDataURI string
}

func (s *stubClient) ExtractLineup(_ context.Context, imageDataURI string) (ExtractedLineup, error) {
	s.lastDataURI = imageDataURI
	if s.err != nil {
		return ExtractedLineup{}, s.err
	}
	return s.lineup, nil
}

func TestServiceExtractFestival(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC))

	t.Run("builds data URI and maps the lineup", func(t *testing.T) {
		client := &stubClient{
			lineup: ExtractedLineup{
				FestivalName: "Summersound",
				Stages: []ExtractedStage{
					{Name: "Main Stage", Artists: []ExtractedArtist{{Name: "Night Owls", StartTime: "21:00", EndTime: "22:00"}}},
				},
			},
		}
		service := NewService(client, clock)

		f, err := service.ExtractFestival(context.Background(), []byte("fake-png"), "image/png")

		assert.NoError(t, err)
		assert.Equal(t, "Summersound", f.Name)
		assert.True(t, strings.HasPrefix(client.lastDataURI, "data:image/png;base64,"))
	})

	t.Run("rejects non-image uploads", func(t *testing.T) {
		service := NewService(&stubClient{}, clock)

		_, err := service.ExtractFestival(context.Background(), []byte("pdf"), "application/pdf")

		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("client failure is wrapped", func(t *testing.T) {
		service := NewService(&stubClient{err: ErrExtractorDisabled}, clock)

		_, err := service.ExtractFestival(context.Background(), []byte("fake-png"), "image/png")

		assert.ErrorIs(t, err, ErrExtractorDisabled)
	})
}

func TestOpenAIClientDisabled(t *testing.T) {
	client := NewOpenAIClient("", "gpt-4o-mini")

	_, err := client.ExtractLineup(context.Background(), "data:image/png;base64,AAAA")

	assert.ErrorIs(t, err, ErrExtractorDisabled)
}

func TestHandlerExtractLineup(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC))

	posterRequest := func(t *testing.T, fieldName string, partContentType string) *http.Request {
		t.Helper()
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="poster.png"`)
		header.Set("Content-Type", partContentType)
		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake-png"))
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/extract", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	newRequest := func(t *testing.T, fieldName string, partContentType string) *httptest.ResponseRecorder {
		t.Helper()
		recorder := httptest.NewRecorder()
		client := &stubClient{
			lineup: ExtractedLineup{
				FestivalName: "Summersound",
				Stages: []ExtractedStage{
					{Name: "Main Stage", Artists: []ExtractedArtist{{Name: "Night Owls", StartTime: "21:00", EndTime: "22:00"}}},
				},
			},
		}
		handler := NewHandler(NewService(client, clock))
		handler.ExtractLineup(recorder, posterRequest(t, fieldName, partContentType))
		return recorder
	}

	t.Run("returns a draft festival", func(t *testing.T) {
		recorder := newRequest(t, "image", "image/png")

		assert.Equal(t, 200, recorder.Code)
		var dto festival.FestivalDTO
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&dto))
		assert.Equal(t, "Summersound", dto.Name)
		assert.Len(t, dto.Artists, 1)
		assert.Equal(t, "Night Owls", dto.Artists[0].ArtistName)
	})

	t.Run("missing image field", func(t *testing.T) {
		recorder := newRequest(t, "file", "image/png")

		assert.Equal(t, 400, recorder.Code)
	})

	t.Run("non-image upload", func(t *testing.T) {
		recorder := newRequest(t, "image", "application/pdf")

		assert.Equal(t, 400, recorder.Code)
	})

	t.Run("extractor disabled", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler := NewHandler(NewService(&stubClient{err: ErrExtractorDisabled}, clock))
		handler.ExtractLineup(recorder, posterRequest(t, "image", "image/png"))

		assert.Equal(t, 503, recorder.Code)
	})
}
