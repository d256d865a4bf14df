package watch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/server/internal/repository/session"
)

func enter(t *testing.T, service *service, videoId, category string) FullscreenResponse {
	t.Helper()

	resp, err := service.EnterFullscreen(context.Background(), &EnterFullscreenParams{
		ViewerId: testViewer,
		VideoId:  videoId,
		Category: category,
	})
	require.NoError(t, err)

	return resp
}

func TestEnterFullscreen(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a", "b", "c"}}
	service, media := newTestService(t, playlists, "a", "b", "c")

	resp := enter(t, service, "a", "yoga")
	assert.Equal(t, "a", resp.Fullscreen.VideoId)
	assert.Equal(t, "yoga", resp.Fullscreen.Category)
	assert.False(t, resp.Fullscreen.IsCompact)
	assert.Equal(t, session.StatusPlaying, resp.Playback.Status)
	assert.False(t, resp.Playback.IsMuted, "fullscreen entry unmutes")
	require.Len(t, media.ops("request_fullscreen"), 1)
}

func TestSwitchVideoWrapsAround(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a", "b", "c"}}
	service, media := newTestService(t, playlists, "a", "b", "c")
	ctx := context.Background()

	enter(t, service, "c", "yoga")

	resp, err := service.SwitchVideo(ctx, &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Fullscreen.VideoId, "next from the last video wraps to the first")
	assert.Equal(t, session.StatusPlaying, resp.Playback.Status)
	assert.False(t, resp.Playback.IsMuted)
	assert.InDelta(t, 0, resp.Playback.Progress, 0.001, "incoming video restarts from the beginning")

	resp, err = service.SwitchVideo(ctx, &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionPrevious})
	require.NoError(t, err)
	assert.Equal(t, "c", resp.Fullscreen.VideoId, "previous from the first video wraps to the last")

	// one request on entry plus one per swap
	assert.Len(t, media.ops("request_fullscreen"), 3, "fullscreen is re-requested on every swap")
}

func TestSwitchVideoPausesOutgoing(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a", "b"}}
	service, media := newTestService(t, playlists, "a", "b")

	enter(t, service, "a", "yoga")

	_, err := service.SwitchVideo(context.Background(), &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionNext})
	require.NoError(t, err)

	pauses := media.ops("pause")
	require.Len(t, pauses, 1)
	assert.Equal(t, "a", pauses[0].VideoId)

	outgoing, err := service.sessionRepo.GetPlayback(testViewer, "a")
	require.NoError(t, err)
	assert.Equal(t, session.StatusPaused, outgoing.Status)
}

func TestSwitchVideoSingleEntryPlaylist(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a"}}
	service, _ := newTestService(t, playlists, "a")

	enter(t, service, "a", "yoga")

	resp, err := service.SwitchVideo(context.Background(), &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Fullscreen.VideoId, "wraparound on a single-entry playlist is a fixed point")
}

func TestSwitchVideoWithoutSession(t *testing.T) {
	service, _ := newTestService(t, nil, "a")

	_, err := service.SwitchVideo(context.Background(), &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionNext})
	require.ErrorIs(t, err, ErrNoFullscreenSession)
}

func TestReactiveExitClearsSession(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a", "b"}}
	service, _ := newTestService(t, playlists, "a", "b")
	ctx := context.Background()

	enter(t, service, "a", "yoga")

	// the browser reports fullscreen gone without this service asking
	require.NoError(t, service.HandleFullscreenChange(ctx, testViewer, false))

	_, err := service.ActiveFullscreen(ctx, testViewer)
	require.ErrorIs(t, err, ErrNoFullscreenSession)

	_, err = service.SwitchVideo(ctx, &SwitchVideoParams{ViewerId: testViewer, Direction: DirectionNext})
	require.ErrorIs(t, err, ErrNoFullscreenSession, "reactive exit clears identically to the explicit control")
}

func TestExplicitExitClearsSession(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a"}}
	service, media := newTestService(t, playlists, "a")
	ctx := context.Background()

	enter(t, service, "a", "yoga")

	require.NoError(t, service.ExitFullscreen(ctx, testViewer))
	require.Len(t, media.ops("exit_fullscreen"), 1)

	_, err := service.ActiveFullscreen(ctx, testViewer)
	require.ErrorIs(t, err, ErrNoFullscreenSession)

	// exiting again is a no-op, a reactive exit may already have cleared it
	require.NoError(t, service.ExitFullscreen(ctx, testViewer))
}

func TestFullscreenChangeWhileStillFullscreen(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a"}}
	service, _ := newTestService(t, playlists, "a")
	ctx := context.Background()

	enter(t, service, "a", "yoga")

	require.NoError(t, service.HandleFullscreenChange(ctx, testViewer, true))

	fullscreen, err := service.ActiveFullscreen(ctx, testViewer)
	require.NoError(t, err)
	assert.Equal(t, "a", fullscreen.VideoId)
}

func TestToggleCompact(t *testing.T) {
	playlists := map[string][]string{"yoga": {"a"}}
	service, _ := newTestService(t, playlists, "a")
	ctx := context.Background()

	_, err := service.ToggleCompact(ctx, testViewer)
	require.ErrorIs(t, err, ErrNoFullscreenSession, "compact is only meaningful inside a session")

	enter(t, service, "a", "yoga")

	fullscreen, err := service.ToggleCompact(ctx, testViewer)
	require.NoError(t, err)
	assert.True(t, fullscreen.IsCompact)

	fullscreen, err = service.ToggleCompact(ctx, testViewer)
	require.NoError(t, err)
	assert.False(t, fullscreen.IsCompact)

	// compact resets with the session
	enterAgain := func() {
		_, err := service.ToggleCompact(ctx, testViewer)
		require.NoError(t, err)
		require.NoError(t, service.ExitFullscreen(ctx, testViewer))
		resp := enter(t, service, "a", "yoga")
		assert.False(t, resp.Fullscreen.IsCompact)
	}
	enterAgain()
}
