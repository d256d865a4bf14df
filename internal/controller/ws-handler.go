package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/fitclub/server/internal/service/watch"
)

type Output struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// watch upgrades the connection, sends the grouped catalog, seeds the
// viewer's playback state for every video and serves playback events until
// the connection drops.
func (c *controller) watch(w http.ResponseWriter, r *http.Request) {
	groups, err := c.catalogService.ListWorkouts(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to list workouts", "error", err)
		return
	}

	videoIds, err := c.catalogService.VideoIds(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to get video ids", "error", err)
		return
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to upgrade to websocket", "error", err)
		return
	}

	viewerId := uuid.NewString()
	if err := c.connRepo.Add(conn, viewerId); err != nil {
		c.logger.WarnContext(r.Context(), "failed to add connection", "error", err)
		conn.Close()
		return
	}
	defer c.disconnect(r.Context(), conn, viewerId)

	c.watchService.StartViewer(r.Context(), viewerId, videoIds)

	if err := conn.WriteJSON(&Output{
		Type: "WORKOUTS",
		Payload: map[string]any{
			"viewer_id": viewerId,
			"groups":    groups,
		},
	}); err != nil {
		c.logger.WarnContext(r.Context(), "failed to write workouts", "error", err)
		return
	}

	ctx := context.WithValue(r.Context(), viewerIdCtxKey, viewerId)

	if err := c.getWSRouter().ServeConn(ctx, conn); err != nil {
		c.logger.InfoContext(r.Context(), "connection closed", "viewer_id", viewerId, "error", err)
	}
}

func (c *controller) disconnect(ctx context.Context, conn *websocket.Conn, viewerId string) {
	c.watchService.StopViewer(ctx, viewerId)
	if err := c.connRepo.RemoveByConn(conn); err != nil {
		c.logger.DebugContext(ctx, "failed to remove connection", "viewer_id", viewerId, "error", err)
	}
}

func wsHandler[T any](fn func(ctx context.Context, conn *websocket.Conn, input T) error) func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
	return func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
		var input T
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return err
			}
		}

		return fn(ctx, conn, input)
	}
}

type EmptyStruct struct{}

func (c *controller) handleAlive(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	return nil
}

type videoInput struct {
	VideoId string `json:"video_id"`
}

func (c *controller) writePlayback(conn *websocket.Conn, playback watch.Playback) error {
	return conn.WriteJSON(&Output{Type: "PLAYBACK_UPDATED", Payload: playback})
}

func (c *controller) handleTogglePlay(ctx context.Context, conn *websocket.Conn, input videoInput) error {
	playback, err := c.watchService.TogglePlay(ctx, &watch.TogglePlayParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

type timeUpdateInput struct {
	VideoId     string  `json:"video_id"`
	CurrentTime float64 `json:"current_time"`
	Duration    float64 `json:"duration"`
}

func (c *controller) handleTimeUpdate(ctx context.Context, conn *websocket.Conn, input timeUpdateInput) error {
	playback, err := c.watchService.ReportTimeUpdate(ctx, &watch.ReportTimeUpdateParams{
		ViewerId:    c.getViewerIdFromCtx(ctx),
		VideoId:     input.VideoId,
		CurrentTime: input.CurrentTime,
		Duration:    input.Duration,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

type seekInput struct {
	VideoId  string  `json:"video_id"`
	Fraction float64 `json:"fraction"`
}

func (c *controller) handleSeek(ctx context.Context, conn *websocket.Conn, input seekInput) error {
	playback, err := c.watchService.Seek(ctx, &watch.SeekParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
		Fraction: input.Fraction,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

func (c *controller) handleToggleMute(ctx context.Context, conn *websocket.Conn, input videoInput) error {
	playback, err := c.watchService.ToggleMute(ctx, &watch.ToggleMuteParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

type setVolumeInput struct {
	VideoId string  `json:"video_id"`
	Volume  float64 `json:"volume"`
}

func (c *controller) handleSetVolume(ctx context.Context, conn *websocket.Conn, input setVolumeInput) error {
	playback, err := c.watchService.SetVolume(ctx, &watch.SetVolumeParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
		Volume:   input.Volume,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

func (c *controller) handleLoaded(ctx context.Context, conn *websocket.Conn, input videoInput) error {
	playback, err := c.watchService.ReportLoaded(ctx, &watch.ReportLoadedParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

type autoplayRejectedInput struct {
	VideoId string `json:"video_id"`
	Reason  string `json:"reason"`
}

func (c *controller) handleAutoplayRejected(ctx context.Context, conn *websocket.Conn, input autoplayRejectedInput) error {
	playback, err := c.watchService.ReportAutoplayRejected(ctx, &watch.ReportAutoplayRejectedParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
		Reason:   input.Reason,
	})
	if err != nil {
		return err
	}

	return c.writePlayback(conn, playback)
}

type enterFullscreenInput struct {
	VideoId  string `json:"video_id"`
	Category string `json:"category"`
}

func (c *controller) handleEnterFullscreen(ctx context.Context, conn *websocket.Conn, input enterFullscreenInput) error {
	resp, err := c.watchService.EnterFullscreen(ctx, &watch.EnterFullscreenParams{
		ViewerId: c.getViewerIdFromCtx(ctx),
		VideoId:  input.VideoId,
		Category: input.Category,
	})
	if err != nil {
		return err
	}

	return conn.WriteJSON(&Output{Type: "FULLSCREEN_UPDATED", Payload: resp})
}

func (c *controller) handleExitFullscreen(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	if err := c.watchService.ExitFullscreen(ctx, c.getViewerIdFromCtx(ctx)); err != nil {
		return err
	}

	return conn.WriteJSON(&Output{Type: "FULLSCREEN_EXITED", Payload: EmptyStruct{}})
}

type fullscreenChangeInput struct {
	IsFullscreen bool `json:"is_fullscreen"`
}

func (c *controller) handleFullscreenChange(ctx context.Context, conn *websocket.Conn, input fullscreenChangeInput) error {
	if err := c.watchService.HandleFullscreenChange(ctx, c.getViewerIdFromCtx(ctx), input.IsFullscreen); err != nil {
		return err
	}

	if !input.IsFullscreen {
		return conn.WriteJSON(&Output{Type: "FULLSCREEN_EXITED", Payload: EmptyStruct{}})
	}

	return nil
}

func (c *controller) handleFullscreenNext(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	return c.switchVideo(ctx, conn, watch.DirectionNext)
}

func (c *controller) handleFullscreenPrevious(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	return c.switchVideo(ctx, conn, watch.DirectionPrevious)
}

func (c *controller) switchVideo(ctx context.Context, conn *websocket.Conn, direction watch.Direction) error {
	resp, err := c.watchService.SwitchVideo(ctx, &watch.SwitchVideoParams{
		ViewerId:  c.getViewerIdFromCtx(ctx),
		Direction: direction,
	})
	if err != nil {
		return err
	}

	return conn.WriteJSON(&Output{Type: "FULLSCREEN_UPDATED", Payload: resp})
}

func (c *controller) handleToggleCompact(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	fullscreen, err := c.watchService.ToggleCompact(ctx, c.getViewerIdFromCtx(ctx))
	if err != nil {
		return err
	}

	return conn.WriteJSON(&Output{Type: "COMPACT_UPDATED", Payload: fullscreen})
}
