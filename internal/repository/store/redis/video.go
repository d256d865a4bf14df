package redis

import (
	"context"
	"fmt"

	"github.com/fitclub/server/internal/repository/store"
)

func (r repo) getVideoKey(videoId string) string {
	return "video:" + videoId
}

func (r repo) getVideoListKey() string {
	return "videos"
}

func (r repo) SetVideo(ctx context.Context, params *store.SetVideoParams) error {
	pipe := r.rc.TxPipeline()

	video := store.Video{
		Title:        params.Title,
		Channel:      params.Channel,
		Category:     params.Category,
		ThumbnailURL: params.ThumbnailURL,
		VideoURL:     params.VideoURL,
		Description:  params.Description,
	}
	pipe.HSet(ctx, r.getVideoKey(params.VideoId), video)
	pipe.RPush(ctx, r.getVideoListKey(), params.VideoId)

	if err := r.executePipe(ctx, pipe); err != nil {
		return fmt.Errorf("failed to set video: %w", err)
	}

	return nil
}

func (r repo) GetVideo(ctx context.Context, videoId string) (store.Video, error) {
	videoKey := r.getVideoKey(videoId)
	res, err := r.rc.Exists(ctx, videoKey).Result()
	if err != nil {
		return store.Video{}, fmt.Errorf("failed to check if video exists: %w", err)
	}

	if res == 0 {
		return store.Video{}, store.ErrVideoNotFound
	}

	var video store.Video
	if err := r.rc.HGetAll(ctx, videoKey).Scan(&video); err != nil {
		return store.Video{}, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

// GetVideosIds returns video ids in insertion order.
func (r repo) GetVideosIds(ctx context.Context) ([]string, error) {
	videoIds, err := r.rc.LRange(ctx, r.getVideoListKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get videos ids: %w", err)
	}

	return videoIds, nil
}
