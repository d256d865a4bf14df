package session

type PlaybackStatus string

const (
	StatusUnloaded PlaybackStatus = "unloaded"
	StatusPaused   PlaybackStatus = "paused"
	StatusPlaying  PlaybackStatus = "playing"
)

// Playback is the per-viewer, per-video playback record. It is a single
// record rather than parallel per-field maps so the "loaded implies a
// definite play/pause state" invariant has one update site.
type Playback struct {
	Status   PlaybackStatus `json:"status"`
	Volume   float64        `json:"volume"`
	IsMuted  bool           `json:"is_muted"`
	Progress float64        `json:"progress"`
	IsLoaded bool           `json:"is_loaded"`
}

// Fullscreen records which single video occupies the viewer's fullscreen
// surface. At most one exists per viewer.
type Fullscreen struct {
	VideoId   string `json:"video_id"`
	Category  string `json:"category"`
	IsCompact bool   `json:"is_compact"`
}
