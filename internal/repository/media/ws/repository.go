// Package ws relays media element commands to the viewer's browser over its
// websocket connection. The playback service only sees the command methods,
// so it can be driven by a fake in tests.
package ws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
)

type iConnRepo interface {
	GetConn(viewerId string) (*websocket.Conn, error)
}

type command struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type mediaCommandPayload struct {
	VideoId  string   `json:"video_id"`
	Fraction *float64 `json:"fraction,omitempty"`
	Volume   *float64 `json:"volume,omitempty"`
	Muted    *bool    `json:"muted,omitempty"`
}

type repo struct {
	connRepo iConnRepo
	logger   *slog.Logger
}

func NewRepo(connRepo iConnRepo, logger *slog.Logger) *repo {
	return &repo{
		connRepo: connRepo,
		logger:   logger,
	}
}

func (r repo) send(ctx context.Context, viewerId, commandType string, payload mediaCommandPayload) error {
	conn, err := r.connRepo.GetConn(viewerId)
	if err != nil {
		return fmt.Errorf("failed to get conn: %w", err)
	}

	if err := conn.WriteJSON(&command{Type: commandType, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}

	return nil
}

func (r repo) Play(ctx context.Context, viewerId, videoId string) error {
	return r.send(ctx, viewerId, "PLAY", mediaCommandPayload{VideoId: videoId})
}

func (r repo) Pause(ctx context.Context, viewerId, videoId string) error {
	return r.send(ctx, viewerId, "PAUSE", mediaCommandPayload{VideoId: videoId})
}

func (r repo) Seek(ctx context.Context, viewerId, videoId string, fraction float64) error {
	return r.send(ctx, viewerId, "SEEK", mediaCommandPayload{VideoId: videoId, Fraction: &fraction})
}

func (r repo) SetVolume(ctx context.Context, viewerId, videoId string, volume float64) error {
	return r.send(ctx, viewerId, "SET_VOLUME", mediaCommandPayload{VideoId: videoId, Volume: &volume})
}

func (r repo) SetMuted(ctx context.Context, viewerId, videoId string, muted bool) error {
	return r.send(ctx, viewerId, "SET_MUTED", mediaCommandPayload{VideoId: videoId, Muted: &muted})
}

func (r repo) RequestFullscreen(ctx context.Context, viewerId, videoId string) error {
	return r.send(ctx, viewerId, "REQUEST_FULLSCREEN", mediaCommandPayload{VideoId: videoId})
}

func (r repo) ExitFullscreen(ctx context.Context, viewerId, videoId string) error {
	return r.send(ctx, viewerId, "EXIT_FULLSCREEN", mediaCommandPayload{VideoId: videoId})
}
