package watch

import "github.com/fitclub/server/internal/repository/session"

// Playback is the snapshot sent back to the viewer after every transition.
// EffectiveMuted is what the mute indicator shows: muted, or volume at zero.
type Playback struct {
	VideoId        string                 `json:"video_id"`
	Status         session.PlaybackStatus `json:"status"`
	Volume         float64                `json:"volume"`
	IsMuted        bool                   `json:"is_muted"`
	EffectiveMuted bool                   `json:"effective_muted"`
	Progress       float64                `json:"progress"`
	IsLoaded       bool                   `json:"is_loaded"`
}

type Fullscreen struct {
	VideoId   string `json:"video_id"`
	Category  string `json:"category"`
	IsCompact bool   `json:"is_compact"`
}

func toPlayback(videoId string, p session.Playback) Playback {
	return Playback{
		VideoId:        videoId,
		Status:         p.Status,
		Volume:         p.Volume,
		IsMuted:        p.IsMuted,
		EffectiveMuted: p.IsMuted || p.Volume == 0,
		Progress:       p.Progress,
		IsLoaded:       p.IsLoaded,
	}
}

func toFullscreen(f session.Fullscreen) Fullscreen {
	return Fullscreen{
		VideoId:   f.VideoId,
		Category:  f.Category,
		IsCompact: f.IsCompact,
	}
}
