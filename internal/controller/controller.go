package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/fitclub/server/internal/service/catalog"
	"github.com/fitclub/server/internal/service/member"
	"github.com/fitclub/server/internal/service/watch"
	"github.com/fitclub/server/pkg/validator"
)

type iMemberService interface {
	Register(context.Context, *member.RegisterParams) (member.RegisterResponse, error)
}

type iCatalogService interface {
	ListWorkouts(context.Context) ([]catalog.CategoryGroup, error)
	AddVideo(context.Context, *catalog.AddVideoParams) (catalog.Workout, error)
	VideoIds(context.Context) ([]string, error)
}

type iWatchService interface {
	StartViewer(ctx context.Context, viewerId string, videoIds []string)
	StopViewer(ctx context.Context, viewerId string)
	TogglePlay(context.Context, *watch.TogglePlayParams) (watch.Playback, error)
	ReportTimeUpdate(context.Context, *watch.ReportTimeUpdateParams) (watch.Playback, error)
	Seek(context.Context, *watch.SeekParams) (watch.Playback, error)
	ToggleMute(context.Context, *watch.ToggleMuteParams) (watch.Playback, error)
	SetVolume(context.Context, *watch.SetVolumeParams) (watch.Playback, error)
	ReportLoaded(context.Context, *watch.ReportLoadedParams) (watch.Playback, error)
	ReportAutoplayRejected(context.Context, *watch.ReportAutoplayRejectedParams) (watch.Playback, error)
	EnterFullscreen(context.Context, *watch.EnterFullscreenParams) (watch.FullscreenResponse, error)
	ExitFullscreen(ctx context.Context, viewerId string) error
	HandleFullscreenChange(ctx context.Context, viewerId string, isFullscreen bool) error
	SwitchVideo(context.Context, *watch.SwitchVideoParams) (watch.FullscreenResponse, error)
	ToggleCompact(ctx context.Context, viewerId string) (watch.Fullscreen, error)
}

type iConnRepo interface {
	Add(conn *websocket.Conn, viewerId string) error
	RemoveByConn(conn *websocket.Conn) error
}

type controller struct {
	memberService   iMemberService
	catalogService  iCatalogService
	watchService    iWatchService
	connRepo        iConnRepo
	upgrader        websocket.Upgrader
	validate        *validator.Validator
	registerLimiter *rate.Limiter
	logger          *slog.Logger
}

type Config struct {
	// RegisterRate and RegisterBurst bound registration attempts per second
	// across all clients.
	RegisterRate  float64
	RegisterBurst int
}

func NewController(memberService iMemberService, catalogService iCatalogService, watchService iWatchService, connRepo iConnRepo, cfg *Config, logger *slog.Logger) *controller {
	return &controller{
		memberService:  memberService,
		catalogService: catalogService,
		watchService:   watchService,
		connRepo:       connRepo,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		validate:        validator.NewValidator(),
		registerLimiter: rate.NewLimiter(rate.Limit(cfg.RegisterRate), cfg.RegisterBurst),
		logger:          logger,
	}
}
