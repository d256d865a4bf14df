package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/fitclub/server/internal/repository/store"
)

type Workout struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Description  string `json:"description"`
	Views        int    `json:"views"`
	Duration     string `json:"duration"`
}

type CategoryGroup struct {
	Category string    `json:"category"`
	Workouts []Workout `json:"workouts"`
}

// ListWorkouts reads the whole video collection and groups it by category.
// Groups appear in order of first occurrence and keep fetch order within a
// group; a video without a category lands in the uncategorized bucket.
func (s service) ListWorkouts(ctx context.Context) ([]CategoryGroup, error) {
	videoIds, err := s.videoRepo.GetVideosIds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos ids: %w", err)
	}

	groups := make([]CategoryGroup, 0)
	for _, videoId := range videoIds {
		video, err := s.videoRepo.GetVideo(ctx, videoId)
		if err != nil {
			return nil, fmt.Errorf("failed to get video: %w", err)
		}

		category := video.Category
		if category == "" {
			category = UncategorizedBucket
		}

		workout := Workout{
			Id:           videoId,
			Title:        video.Title,
			Channel:      video.Channel,
			Category:     category,
			ThumbnailURL: video.ThumbnailURL,
			VideoURL:     video.VideoURL,
			Description:  video.Description,
			Views:        s.metadata.Views(),
			Duration:     s.metadata.Duration(),
		}

		idx := slices.IndexFunc(groups, func(g CategoryGroup) bool {
			return g.Category == category
		})
		if idx == -1 {
			groups = append(groups, CategoryGroup{
				Category: category,
				Workouts: []Workout{workout},
			})
		} else {
			groups[idx].Workouts = append(groups[idx].Workouts, workout)
		}
	}

	return groups, nil
}

// CategoryPlaylist returns the ids of the category's videos in fetch order.
// The empty category resolves to the uncategorized bucket.
func (s service) CategoryPlaylist(ctx context.Context, category string) ([]string, error) {
	videoIds, err := s.videoRepo.GetVideosIds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos ids: %w", err)
	}

	playlist := make([]string, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, err := s.videoRepo.GetVideo(ctx, videoId)
		if err != nil {
			return nil, fmt.Errorf("failed to get video: %w", err)
		}

		videoCategory := video.Category
		if videoCategory == "" {
			videoCategory = UncategorizedBucket
		}

		if videoCategory == category {
			playlist = append(playlist, videoId)
		}
	}

	return playlist, nil
}

type AddVideoParams struct {
	Title        string
	Channel      string
	Category     string
	ThumbnailURL string
	VideoURL     string
	Description  string
}

func (s service) AddVideo(ctx context.Context, params *AddVideoParams) (Workout, error) {
	videoId := uuid.NewString()
	if err := s.videoRepo.SetVideo(ctx, &store.SetVideoParams{
		VideoId:      videoId,
		Title:        params.Title,
		Channel:      params.Channel,
		Category:     params.Category,
		ThumbnailURL: params.ThumbnailURL,
		VideoURL:     params.VideoURL,
		Description:  params.Description,
	}); err != nil {
		return Workout{}, fmt.Errorf("failed to set video: %w", err)
	}

	category := params.Category
	if category == "" {
		category = UncategorizedBucket
	}

	return Workout{
		Id:           videoId,
		Title:        params.Title,
		Channel:      params.Channel,
		Category:     category,
		ThumbnailURL: params.ThumbnailURL,
		VideoURL:     params.VideoURL,
		Description:  params.Description,
		Views:        s.metadata.Views(),
		Duration:     s.metadata.Duration(),
	}, nil
}

// VideoIds returns every video id in fetch order, used to seed a viewer's
// playback state on connect.
func (s service) VideoIds(ctx context.Context) ([]string, error) {
	videoIds, err := s.videoRepo.GetVideosIds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos ids: %w", err)
	}

	return videoIds, nil
}
