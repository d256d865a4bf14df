package session

import "errors"

var (
	ErrPlaybackNotFound   = errors.New("playback not found")
	ErrFullscreenNotFound = errors.New("fullscreen session not found")
)
