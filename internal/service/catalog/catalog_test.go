package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeRedis "github.com/fitclub/server/internal/repository/store/redis"
)

type fixedMetadata struct{}

func (fixedMetadata) Views() int       { return 1234 }
func (fixedMetadata) Duration() string { return "12:34" }

func newTestService(t *testing.T) *service {
	t.Helper()

	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	repo := storeRedis.NewRepo(rc, slog.Default())

	return NewService(repo, fixedMetadata{}, slog.Default())
}

func TestListWorkoutsGrouping(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	first, err := service.AddVideo(ctx, &AddVideoParams{Title: "Morning Flow", Channel: "Flow Studio", Category: "yoga", VideoURL: "https://cdn.example.com/1.mp4"})
	require.NoError(t, err)
	second, err := service.AddVideo(ctx, &AddVideoParams{Title: "Stretch Basics", Channel: "Flow Studio", VideoURL: "https://cdn.example.com/2.mp4"})
	require.NoError(t, err)
	third, err := service.AddVideo(ctx, &AddVideoParams{Title: "Evening Flow", Channel: "Flow Studio", Category: "yoga", VideoURL: "https://cdn.example.com/3.mp4"})
	require.NoError(t, err)

	groups, err := service.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "yoga", groups[0].Category)
	require.Len(t, groups[0].Workouts, 2)
	assert.Equal(t, first.Id, groups[0].Workouts[0].Id, "fetch order preserved within group")
	assert.Equal(t, third.Id, groups[0].Workouts[1].Id)

	assert.Equal(t, UncategorizedBucket, groups[1].Category, "missing category lands in the default bucket")
	require.Len(t, groups[1].Workouts, 1)
	assert.Equal(t, second.Id, groups[1].Workouts[0].Id)

	for _, group := range groups {
		for _, workout := range group.Workouts {
			assert.Equal(t, 1234, workout.Views)
			assert.Equal(t, "12:34", workout.Duration)
		}
	}
}

func TestListWorkoutsEmpty(t *testing.T) {
	service := newTestService(t)

	groups, err := service.ListWorkouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCategoryPlaylist(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	first, err := service.AddVideo(ctx, &AddVideoParams{Title: "HIIT 1", Channel: "Burn", Category: "hiit", VideoURL: "https://cdn.example.com/1.mp4"})
	require.NoError(t, err)
	_, err = service.AddVideo(ctx, &AddVideoParams{Title: "Core", Channel: "Burn", VideoURL: "https://cdn.example.com/2.mp4"})
	require.NoError(t, err)
	second, err := service.AddVideo(ctx, &AddVideoParams{Title: "HIIT 2", Channel: "Burn", Category: "hiit", VideoURL: "https://cdn.example.com/3.mp4"})
	require.NoError(t, err)

	playlist, err := service.CategoryPlaylist(ctx, "hiit")
	require.NoError(t, err)
	assert.Equal(t, []string{first.Id, second.Id}, playlist)

	uncategorized, err := service.CategoryPlaylist(ctx, UncategorizedBucket)
	require.NoError(t, err)
	assert.Len(t, uncategorized, 1)
}
