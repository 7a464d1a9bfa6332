package app

import (
	"time"

	"github.com/festperfect/festperfect/internal/config"
	"github.com/festperfect/festperfect/internal/event_bus"
	"github.com/festperfect/festperfect/internal/utils"
	"github.com/festperfect/festperfect/pkg/extract"
	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/festperfect/festperfect/pkg/planner"
	"github.com/festperfect/festperfect/pkg/share"
	"github.com/festperfect/festperfect/pkg/wallpaper"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	FestivalRepo    festival.Repo
	FestivalService festival.Service
	FestivalHandler *festival.Handler

	PlannerService planner.Service
	PlannerHandler *planner.Handler

	ShareRepo    share.Repo
	ShareService share.Service
	ShareHandler *share.Handler

	WallpaperRenderer wallpaper.ScheduleRenderer
	WallpaperService  wallpaper.Service
	WallpaperHandler  *wallpaper.Handler

	ExtractClient  extract.Client
	ExtractService extract.Service
	ExtractHandler *extract.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.FestivalRepo = festival.NewFestivalRepo(db)
	deps.FestivalService = festival.NewService(deps.FestivalRepo, deps.Clock, deps.EventBus)
	deps.FestivalHandler = festival.NewHandler(deps.FestivalService)

	deps.PlannerService = planner.NewService(deps.FestivalService.GetFestival)
	deps.PlannerHandler = planner.NewHandler(deps.PlannerService)
	planner.RegisterConflictAudit(deps.EventBus)

	deps.ShareRepo = share.NewShareRepo(db)
	deps.ShareService = share.NewService(deps.ShareRepo, deps.FestivalService.GetFestival, deps.Clock)
	deps.ShareHandler = share.NewHandler(deps.ShareService)

	captureTimeout := time.Duration(cfg.Wallpaper.CaptureTimeoutSec) * time.Second
	deps.WallpaperRenderer = wallpaper.NewChromiumRenderer(captureTimeout)
	deps.WallpaperService = wallpaper.NewService(deps.WallpaperRenderer, deps.FestivalService.GetFestival)
	deps.WallpaperHandler = wallpaper.NewHandler(deps.WallpaperService)

	deps.ExtractClient = extract.NewOpenAIClient(cfg.Extractor.APIKey, cfg.Extractor.Model)
	deps.ExtractService = extract.NewService(deps.ExtractClient, deps.Clock)
	deps.ExtractHandler = extract.NewHandler(deps.ExtractService)

	return deps
}
