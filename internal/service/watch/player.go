package watch

import (
	"context"
	"fmt"

	"github.com/fitclub/server/internal/repository/session"
)

type TogglePlayParams struct {
	ViewerId string
	VideoId  string
}

// TogglePlay drives the {unloaded, paused, playing} machine. The first
// toggle on an unloaded video loads it and starts playback muted, which is
// the autoplay-safe default.
func (s service) TogglePlay(ctx context.Context, params *TogglePlayParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	switch playback.Status {
	case session.StatusUnloaded:
		playback.Status = session.StatusPlaying
		playback.IsLoaded = true
		playback.IsMuted = true

		if err := s.media.SetMuted(ctx, params.ViewerId, params.VideoId, true); err != nil {
			return Playback{}, fmt.Errorf("failed to set muted: %w", err)
		}
		if err := s.media.Play(ctx, params.ViewerId, params.VideoId); err != nil {
			return Playback{}, fmt.Errorf("failed to play: %w", err)
		}
	case session.StatusPlaying:
		playback.Status = session.StatusPaused

		if err := s.media.Pause(ctx, params.ViewerId, params.VideoId); err != nil {
			return Playback{}, fmt.Errorf("failed to pause: %w", err)
		}
	case session.StatusPaused:
		playback.Status = session.StatusPlaying

		if err := s.media.Play(ctx, params.ViewerId, params.VideoId); err != nil {
			return Playback{}, fmt.Errorf("failed to play: %w", err)
		}
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type ReportTimeUpdateParams struct {
	ViewerId    string
	VideoId     string
	CurrentTime float64
	Duration    float64
}

// ReportTimeUpdate mirrors a media timeupdate event into the progress
// percentage.
func (s service) ReportTimeUpdate(ctx context.Context, params *ReportTimeUpdateParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	if params.Duration > 0 {
		playback.Progress = clamp(params.CurrentTime/params.Duration*100, 0, 100)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type SeekParams struct {
	ViewerId string
	VideoId  string
	// Fraction is the click position within the progress bar, 0 to 1.
	Fraction float64
}

func (s service) Seek(ctx context.Context, params *SeekParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	fraction := clamp(params.Fraction, 0, 1)
	playback.Progress = fraction * 100

	if err := s.media.Seek(ctx, params.ViewerId, params.VideoId, fraction); err != nil {
		return Playback{}, fmt.Errorf("failed to seek: %w", err)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type ToggleMuteParams struct {
	ViewerId string
	VideoId  string
}

func (s service) ToggleMute(ctx context.Context, params *ToggleMuteParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	playback.IsMuted = !playback.IsMuted

	if err := s.media.SetMuted(ctx, params.ViewerId, params.VideoId, playback.IsMuted); err != nil {
		return Playback{}, fmt.Errorf("failed to set muted: %w", err)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type SetVolumeParams struct {
	ViewerId string
	VideoId  string
	Volume   float64
}

// SetVolume mirrors the volume onto the media element. A positive volume
// while muted unmutes.
func (s service) SetVolume(ctx context.Context, params *SetVolumeParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	playback.Volume = clamp(params.Volume, 0, 1)

	if playback.Volume > 0 && playback.IsMuted {
		playback.IsMuted = false

		if err := s.media.SetMuted(ctx, params.ViewerId, params.VideoId, false); err != nil {
			return Playback{}, fmt.Errorf("failed to set muted: %w", err)
		}
	}

	if err := s.media.SetVolume(ctx, params.ViewerId, params.VideoId, playback.Volume); err != nil {
		return Playback{}, fmt.Errorf("failed to set volume: %w", err)
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type ReportLoadedParams struct {
	ViewerId string
	VideoId  string
}

func (s service) ReportLoaded(ctx context.Context, params *ReportLoadedParams) (Playback, error) {
	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	playback.IsLoaded = true
	// loaded implies a definite play/pause state
	if playback.Status == session.StatusUnloaded {
		playback.Status = session.StatusPaused
	}

	if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
		return Playback{}, fmt.Errorf("failed to set playback: %w", err)
	}

	return toPlayback(params.VideoId, playback), nil
}

type ReportAutoplayRejectedParams struct {
	ViewerId string
	VideoId  string
	Reason   string
}

// ReportAutoplayRejected reconciles state with a play() the browser refused,
// so the controls do not show a video as playing that never started.
func (s service) ReportAutoplayRejected(ctx context.Context, params *ReportAutoplayRejectedParams) (Playback, error) {
	s.logger.InfoContext(ctx, "autoplay rejected", "viewer_id", params.ViewerId, "video_id", params.VideoId, "reason", params.Reason)

	playback, err := s.sessionRepo.GetPlayback(params.ViewerId, params.VideoId)
	if err != nil {
		return Playback{}, fmt.Errorf("failed to get playback: %w", err)
	}

	if playback.Status == session.StatusPlaying {
		playback.Status = session.StatusPaused

		if err := s.sessionRepo.SetPlayback(params.ViewerId, params.VideoId, playback); err != nil {
			return Playback{}, fmt.Errorf("failed to set playback: %w", err)
		}
	}

	return toPlayback(params.VideoId, playback), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
