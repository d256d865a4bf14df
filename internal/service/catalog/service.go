package catalog

import (
	"context"
	"log/slog"

	"github.com/fitclub/server/internal/repository/store"
)

// UncategorizedBucket is the group for videos stored without a category.
const UncategorizedBucket = "uncategorized"

type iVideoRepo interface {
	SetVideo(context.Context, *store.SetVideoParams) error
	GetVideo(ctx context.Context, videoId string) (store.Video, error)
	GetVideosIds(ctx context.Context) ([]string, error)
}

// iMetadata synthesizes the display-only view count and duration that the
// stored record does not carry. Injected so tests can use a deterministic
// implementation instead of the randomized default.
type iMetadata interface {
	Views() int
	Duration() string
}

type service struct {
	videoRepo iVideoRepo
	metadata  iMetadata
	logger    *slog.Logger
}

func NewService(videoRepo iVideoRepo, metadata iMetadata, logger *slog.Logger) *service {
	if metadata == nil {
		metadata = newRandMetadata()
	}

	return &service{
		videoRepo: videoRepo,
		metadata:  metadata,
		logger:    logger,
	}
}
