package wallpaper

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/skip2/go-qrcode"
	log "github.com/sirupsen/logrus"
)

var ErrDayNotFound = errors.New("festival day not found")

const qrImageSize = 256

// scheduleEntry is one line of the wallpaper schedule.
type scheduleEntry struct {
	Time   string
	Artist string
	Stage  string
}

type templateData struct {
	FestivalName string
	Date         string
	MustSee      []scheduleEntry
	Maybe        []scheduleEntry
	QRDataURI    template.URL
	Width        int
	Height       int
}

var wallpaperTemplate = template.Must(template.New("wallpaper").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; }
  body {
    width: {{.Width}}px;
    height: {{.Height}}px;
    background: linear-gradient(160deg, #111827 0%, #0f172a 55%, #000000 100%);
    color: #f9fafb;
    font-family: "Helvetica Neue", Arial, sans-serif;
    overflow: hidden;
  }
  .wallpaper { padding: 10% 8% 6% 8%; box-sizing: border-box; height: 100%; display: flex; flex-direction: column; }
  h1 { font-size: 2.6em; margin: 0 0 0.2em 0; background: linear-gradient(90deg, #f472b6, #22d3ee); -webkit-background-clip: text; color: transparent; }
  .date { color: #9ca3af; font-size: 1.2em; margin-bottom: 1.6em; }
  h2 { font-size: 1.1em; letter-spacing: 0.2em; text-transform: uppercase; margin: 1.2em 0 0.5em 0; }
  h2.must { color: #4ade80; }
  h2.maybe { color: #facc15; }
  .entry { font-size: 1.05em; margin: 0.35em 0; color: #e5e7eb; }
  .entry .time { color: #22d3ee; font-variant-numeric: tabular-nums; }
  .entry .stage { color: #9ca3af; }
  .qr { margin-top: auto; text-align: center; }
  .qr img { width: 18%; background: #ffffff; padding: 8px; border-radius: 12px; }
  .qr p { color: #9ca3af; font-size: 0.9em; }
</style>
</head>
<body>
<div class="wallpaper" data-ready="true">
  <h1>{{.FestivalName}}</h1>
  <div class="date">{{.Date}}</div>
  {{if .MustSee}}<h2 class="must">Must See</h2>
  {{range .MustSee}}<div class="entry"><span class="time">{{.Time}}</span> {{.Artist}} <span class="stage">&middot; {{.Stage}}</span></div>
  {{end}}{{end}}
  {{if .Maybe}}<h2 class="maybe">Maybe</h2>
  {{range .Maybe}}<div class="entry"><span class="time">{{.Time}}</span> {{.Artist}} <span class="stage">&middot; {{.Stage}}</span></div>
  {{end}}{{end}}
  <div class="qr">
    <img src="{{.QRDataURI}}" alt="emergency contact">
    <p>Emergency contact &mdash; scan if found</p>
  </div>
</div>
</body>
</html>
`))

// BuildScheduleHTML renders the wallpaper layout for one day as a standalone
// HTML document sized for the given device.
func BuildScheduleHTML(f festival.Festival, dayID string, device DeviceSize) (string, error) {
	if dayID == "" {
		if len(f.Days) == 0 {
			return "", ErrDayNotFound
		}
		dayID = f.Days[0].ID
	}
	day, ok := f.Day(dayID)
	if !ok {
		return "", ErrDayNotFound
	}
	daySlots := f.ArtistsForDay(day.ID)

	qrPNG, err := qrcode.Encode(ContactQRText(f.ContactInfo), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode contact QR: %w", err)
	}

	data := templateData{
		FestivalName: f.Name,
		Date:         day.Date,
		MustSee:      entriesForPriority(day, daySlots, festival.PriorityMust),
		Maybe:        entriesForPriority(day, daySlots, festival.PriorityMaybe),
		QRDataURI:    template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG)),
		Width:        device.Width,
		Height:       device.Height,
	}

	var buf bytes.Buffer
	if err := wallpaperTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render wallpaper template: %w", err)
	}
	return buf.String(), nil
}

// entriesForPriority lists the day's slots of one tier across all stages,
// sorted by start time.
func entriesForPriority(day festival.FestivalDay, daySlots []festival.ArtistSlot, priority festival.Priority) []scheduleEntry {
	slots := make([]festival.ArtistSlot, 0, len(daySlots))
	for _, slot := range daySlots {
		if slot.Priority == priority {
			slots = append(slots, slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		si, errI := festival.ParseClock(slots[i].StartTime)
		sj, errJ := festival.ParseClock(slots[j].StartTime)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return si < sj
	})

	entries := make([]scheduleEntry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, scheduleEntry{
			Time:   slot.StartTime + "-" + slot.EndTime,
			Artist: slot.ArtistName,
			Stage:  StageNameByID(day, slot.StageID),
		})
	}
	return entries
}

// ScheduleRenderer rasterizes one day's schedule into a lock-screen PNG.
type ScheduleRenderer interface {
	Render(ctx context.Context, f festival.Festival, dayID string, device DeviceSize) ([]byte, error)
}

// ChromiumRenderer captures the HTML layout with headless Chromium.
type ChromiumRenderer struct {
	timeout time.Duration
}

func NewChromiumRenderer(timeout time.Duration) *ChromiumRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromiumRenderer{timeout: timeout}
}

func (r *ChromiumRenderer) Render(ctx context.Context, f festival.Festival, dayID string, device DeviceSize) ([]byte, error) {
	html, err := BuildScheduleHTML(f, dayID, device)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "festperfect-wallpaper-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "wallpaper.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write wallpaper HTML: %w", err)
	}

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	chromeCtx, timeoutCancel := context.WithTimeout(chromeCtx, r.timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(device.Width), int64(device.Height)),
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(250 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(chromeCtx, tasks); err != nil {
		return nil, fmt.Errorf("wallpaper capture failed: %w", err)
	}

	log.Debugf("rendered wallpaper for festival %s at %dx%d (%d bytes)", f.ID, device.Width, device.Height, len(png))
	return png, nil
}
