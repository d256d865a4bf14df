package watch

import (
	"context"
	"log/slog"

	"github.com/fitclub/server/internal/repository/session"
)

type iSessionRepo interface {
	InitPlayback(viewerId string, videoIds []string)
	GetPlayback(viewerId, videoId string) (session.Playback, error)
	SetPlayback(viewerId, videoId string, playback session.Playback) error
	GetFullscreen(viewerId string) (session.Fullscreen, error)
	SetFullscreen(viewerId string, fullscreen session.Fullscreen)
	ClearFullscreen(viewerId string)
	RemoveViewer(viewerId string)
}

// iMediaController is the injected media element capability. The production
// implementation relays each call to the viewer's browser; tests drive the
// state machine with a fake.
type iMediaController interface {
	Play(ctx context.Context, viewerId, videoId string) error
	Pause(ctx context.Context, viewerId, videoId string) error
	Seek(ctx context.Context, viewerId, videoId string, fraction float64) error
	SetVolume(ctx context.Context, viewerId, videoId string, volume float64) error
	SetMuted(ctx context.Context, viewerId, videoId string, muted bool) error
	RequestFullscreen(ctx context.Context, viewerId, videoId string) error
	ExitFullscreen(ctx context.Context, viewerId, videoId string) error
}

type iPlaylistProvider interface {
	CategoryPlaylist(ctx context.Context, category string) ([]string, error)
}

type service struct {
	sessionRepo iSessionRepo
	media       iMediaController
	playlists   iPlaylistProvider
	logger      *slog.Logger
}

func NewService(sessionRepo iSessionRepo, media iMediaController, playlists iPlaylistProvider, logger *slog.Logger) *service {
	return &service{
		sessionRepo: sessionRepo,
		media:       media,
		playlists:   playlists,
		logger:      logger,
	}
}

// StartViewer seeds default playback records for every video the viewer can
// see. Called once per connection, after the catalog fetch.
func (s service) StartViewer(ctx context.Context, viewerId string, videoIds []string) {
	s.sessionRepo.InitPlayback(viewerId, videoIds)
}

// StopViewer drops all playback and fullscreen state for the viewer.
func (s service) StopViewer(ctx context.Context, viewerId string) {
	s.sessionRepo.RemoveViewer(viewerId)
}
