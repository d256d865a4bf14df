package watch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/fitclub/server/internal/repository/session"
)

type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

type EnterFullscreenParams struct {
	ViewerId string
	VideoId  string
	Category string
}

type FullscreenResponse struct {
	Fullscreen Fullscreen
	Playback   Playback
}

// EnterFullscreen opens the theater session for one video: it is forced to
// playing and unmuted, and the browser is asked for fullscreen on its
// element.
func (s service) EnterFullscreen(ctx context.Context, params *EnterFullscreenParams) (FullscreenResponse, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to get playback: %w", err)
	}

	playback.Status = session.StatusPlaying
	playback.IsLoaded = true
	playback.IsMuted = false

	if err := s.media.SetMuted(ctx, params.ViewerId, params.VideoId, false); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to set muted: %w", err)
	}
	if err := s.media.Play(ctx, params.ViewerId, params.VideoId); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to play: %w", err)
	}
	if err := s.media.RequestFullscreen(ctx, params.ViewerId, params.VideoId); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to request fullscreen: %w", err)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to set playback: %w", err)
	}

	fullscreen := session.Fullscreen{
		VideoId:   params.VideoId,
		Category:  params.Category,
		IsCompact: false,
	}
	s.sessionRepo.SetFullscreen(params.ViewerId, fullscreen)

	return FullscreenResponse{
		Fullscreen: toFullscreen(fullscreen),
		Playback:   toPlayback(params.VideoId, playback),
	}, nil
}

// ExitFullscreen ends the session on the viewer's request and tells the
// browser to leave fullscreen. No-op when no session is active, so a
// reactive exit that already cleared the session does not fail a following
// explicit one.
func (s service) ExitFullscreen(ctx context.Context, viewerId string) error {
	fullscreen, err := s.sessionRepo.GetFullscreen(viewerId)
	if err != nil {
		if errors.Is(err, session.ErrFullscreenNotFound) {
			return nil
		}

		return fmt.Errorf("failed to get fullscreen: %w", err)
	}

	if err := s.media.ExitFullscreen(ctx, viewerId, fullscreen.VideoId); err != nil {
		return fmt.Errorf("failed to exit fullscreen: %w", err)
	}

	s.sessionRepo.ClearFullscreen(viewerId)

	return nil
}

// HandleFullscreenChange reacts to the browser's fullscreenchange event.
// When the browser reports no fullscreen element (the Escape key, or an exit
// this service never initiated), the session is cleared exactly as an
// explicit exit would, minus the redundant exit command.
func (s service) HandleFullscreenChange(ctx context.Context, viewerId string, isFullscreen bool) error {
	if isFullscreen {
		return nil
	}

	s.sessionRepo.ClearFullscreen(viewerId)

	return nil
}

type SwitchVideoParams struct {
	ViewerId  string
	Direction Direction
}

// SwitchVideo steps the active fullscreen session to the next or previous
// video of its category with wraparound. The outgoing video is paused; the
// incoming one starts from the beginning, unmuted. Fullscreen is explicitly
// re-requested on the incoming element on every swap, so the session
// survives the element change regardless of how the host browser treats it.
func (s service) SwitchVideo(ctx context.Context, params *SwitchVideoParams) (FullscreenResponse, error) {
	fullscreen, err := s.sessionRepo.GetFullscreen(params.ViewerId)
	if err != nil {
		if errors.Is(err, session.ErrFullscreenNotFound) {
			return FullscreenResponse{}, ErrNoFullscreenSession
		}

		return FullscreenResponse{}, fmt.Errorf("failed to get fullscreen: %w", err)
	}

	playlist, err := s.playlists.CategoryPlaylist(ctx, fullscreen.Category)
	if err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to get category playlist: %w", err)
	}

	idx := slices.Index(playlist, fullscreen.VideoId)
	if idx == -1 {
		return FullscreenResponse{}, ErrVideoNotInPlaylist
	}

	n := len(playlist)
	var nextIdx int
	if params.Direction == DirectionPrevious {
		nextIdx = (idx - 1 + n) % n
	} else {
		nextIdx = (idx + 1) % n
	}
	nextVideoId := playlist[nextIdx]

	outgoing, err := s.sessionRepo.GetPlayback(params.ViewerId, fullscreen.VideoId)
	if err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to get outgoing playback: %w", err)
	}

	if outgoing.Status == session.StatusPlaying {
		outgoing.Status = session.StatusPaused
	}
	if err := s.media.Pause(ctx, params.ViewerId, fullscreen.VideoId); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to pause outgoing video: %w", err)
	}
	if err := s.sessionRepo.SetPlayback(params.ViewerId, fullscreen.VideoId, outgoing); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to set outgoing playback: %w", err)
	}

	incoming, err := s.sessionRepo.GetPlayback(params.ViewerId, nextVideoId)
	if err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to get incoming playback: %w", err)
	}

	incoming.Status = session.StatusPlaying
	incoming.IsLoaded = true
	incoming.IsMuted = false
	incoming.Progress = 0

	if err := s.media.Seek(ctx, params.ViewerId, nextVideoId, 0); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to seek incoming video: %w", err)
	}
	if err := s.media.SetMuted(ctx, params.ViewerId, nextVideoId, false); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to unmute incoming video: %w", err)
	}
	if err := s.media.Play(ctx, params.ViewerId, nextVideoId); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to play incoming video: %w", err)
	}
	if err := s.media.RequestFullscreen(ctx, params.ViewerId, nextVideoId); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to request fullscreen: %w", err)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, nextVideoId, incoming); err != nil {
		return FullscreenResponse{}, fmt.Errorf("failed to set incoming playback: %w", err)
	}

	fullscreen.VideoId = nextVideoId
	s.sessionRepo.SetFullscreen(params.ViewerId, fullscreen)

	return FullscreenResponse{
		Fullscreen: toFullscreen(fullscreen),
		Playback:   toPlayback(nextVideoId, incoming),
	}, nil
}

// ToggleCompact shrinks or restores the fullscreen video's footprint without
// leaving fullscreen mode.
func (s service) ToggleCompact(ctx context.Context, viewerId string) (Fullscreen, error) {
	fullscreen, err := s.sessionRepo.GetFullscreen(viewerId)
	if err != nil {
		if errors.Is(err, session.ErrFullscreenNotFound) {
			return Fullscreen{}, ErrNoFullscreenSession
		}

		return Fullscreen{}, fmt.Errorf("failed to get fullscreen: %w", err)
	}

	fullscreen.IsCompact = !fullscreen.IsCompact
	s.sessionRepo.SetFullscreen(viewerId, fullscreen)

	return toFullscreen(fullscreen), nil
}

// ActiveFullscreen returns the viewer's current session, if any.
func (s service) ActiveFullscreen(ctx context.Context, viewerId string) (Fullscreen, error) {
	fullscreen, err := s.sessionRepo.GetFullscreen(viewerId)
	if err != nil {
		if errors.Is(err, session.ErrFullscreenNotFound) {
			return Fullscreen{}, ErrNoFullscreenSession
		}

		return Fullscreen{}, fmt.Errorf("failed to get fullscreen: %w", err)
	}

	return toFullscreen(fullscreen), nil
}
