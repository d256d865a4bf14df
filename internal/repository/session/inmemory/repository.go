package inmemory

import (
	"log/slog"
	"sync"

	"github.com/fitclub/server/internal/repository/session"
)

const defaultVolume = 0.7

type repo struct {
	playbacks   map[string]map[string]session.Playback
	fullscreens map[string]session.Fullscreen
	logger      *slog.Logger
	mu          sync.RWMutex
}

func NewRepo(logger *slog.Logger) *repo {
	return &repo{
		playbacks:   make(map[string]map[string]session.Playback),
		fullscreens: make(map[string]session.Fullscreen),
		logger:      logger,
	}
}

// InitPlayback seeds default playback records for every video id. Existing
// records for the viewer are replaced.
func (r *repo) InitPlayback(viewerId string, videoIds []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	playbacks := make(map[string]session.Playback, len(videoIds))
	for _, videoId := range videoIds {
		playbacks[videoId] = session.Playback{
			Status:   session.StatusUnloaded,
			Volume:   defaultVolume,
			IsMuted:  true,
			Progress: 0,
			IsLoaded: false,
		}
	}

	r.playbacks[viewerId] = playbacks
}

func (r *repo) GetPlayback(viewerId, videoId string) (session.Playback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playback, ok := r.playbacks[viewerId][videoId]
	if !ok {
		return session.Playback{}, session.ErrPlaybackNotFound
	}

	return playback, nil
}

func (r *repo) SetPlayback(viewerId, videoId string, playback session.Playback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	playbacks, ok := r.playbacks[viewerId]
	if !ok {
		return session.ErrPlaybackNotFound
	}
	if _, ok := playbacks[videoId]; !ok {
		return session.ErrPlaybackNotFound
	}

	playbacks[videoId] = playback

	return nil
}

func (r *repo) GetFullscreen(viewerId string) (session.Fullscreen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fullscreen, ok := r.fullscreens[viewerId]
	if !ok {
		return session.Fullscreen{}, session.ErrFullscreenNotFound
	}

	return fullscreen, nil
}

func (r *repo) SetFullscreen(viewerId string, fullscreen session.Fullscreen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fullscreens[viewerId] = fullscreen
}

func (r *repo) ClearFullscreen(viewerId string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.fullscreens, viewerId)
}

// RemoveViewer drops all session state for the viewer.
func (r *repo) RemoveViewer(viewerId string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.playbacks, viewerId)
	delete(r.fullscreens, viewerId)
}
