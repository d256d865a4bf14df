package controller

import (
	"github.com/fitclub/server/pkg/wsrouter"
)

func (c *controller) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New()

	mux.Handle("ALIVE", wsHandler(c.handleAlive))

	// player
	mux.Handle("TOGGLE_PLAY", wsHandler(c.handleTogglePlay))
	mux.Handle("TIME_UPDATE", wsHandler(c.handleTimeUpdate))
	mux.Handle("SEEK", wsHandler(c.handleSeek))
	mux.Handle("TOGGLE_MUTE", wsHandler(c.handleToggleMute))
	mux.Handle("SET_VOLUME", wsHandler(c.handleSetVolume))
	mux.Handle("LOADED", wsHandler(c.handleLoaded))
	mux.Handle("AUTOPLAY_REJECTED", wsHandler(c.handleAutoplayRejected))

	// fullscreen
	mux.Handle("ENTER_FULLSCREEN", wsHandler(c.handleEnterFullscreen))
	mux.Handle("EXIT_FULLSCREEN", wsHandler(c.handleExitFullscreen))
	mux.Handle("FULLSCREEN_CHANGE", wsHandler(c.handleFullscreenChange))
	mux.Handle("FULLSCREEN_NEXT", wsHandler(c.handleFullscreenNext))
	mux.Handle("FULLSCREEN_PREVIOUS", wsHandler(c.handleFullscreenPrevious))
	mux.Handle("TOGGLE_COMPACT", wsHandler(c.handleToggleCompact))

	return mux
}
