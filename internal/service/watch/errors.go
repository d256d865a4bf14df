package watch

import "errors"

var (
	ErrNoFullscreenSession = errors.New("no active fullscreen session")
	ErrVideoNotInPlaylist  = errors.New("video not in playlist")
)
