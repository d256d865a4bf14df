package app

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityRedis "github.com/fitclub/server/internal/repository/identity/redis"
	storeRedis "github.com/fitclub/server/internal/repository/store/redis"
	"github.com/fitclub/server/internal/service/catalog"
	"github.com/fitclub/server/internal/service/identity"
	"github.com/fitclub/server/internal/service/member"
)

func TestRegistrationFlow(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s := miniredis.RunT(t)
	r := redis.NewClient(&redis.Options{Addr: s.Addr()})

	storeRepo := storeRedis.NewRepo(r, slog.Default())
	identityRepo := identityRedis.NewRepo(r, slog.Default())
	identityService := identity.NewService(identityRepo, "test-secret", slog.Default())
	memberService := member.NewService(identityService, storeRepo, slog.Default())

	ctx := context.Background()

	// register
	registerParams := member.RegisterParams{
		Name:           "Robin Vale",
		Email:          "robin@example.com",
		Password:       "secret123",
		MembershipTier: member.TierBasic,
	}
	registerResp, err := memberService.Register(ctx, &registerParams)
	require.NoError(t, err)
	assert.NotEmpty(t, registerResp.ProfileId, "profile id is empty")
	assert.NotEmpty(t, registerResp.Uid, "uid is empty")
	assert.NotEmpty(t, registerResp.Token, "token is empty")
	t.Log("member registered")

	// the profile record carries the identity reference
	profile, err := storeRepo.GetProfile(ctx, registerResp.ProfileId)
	require.NoError(t, err)
	assert.Equal(t, registerParams.Name, profile.Name, "name is not equal")
	assert.Equal(t, registerParams.Email, profile.Email, "email is not equal")
	assert.Equal(t, string(member.TierBasic), profile.MembershipTier, "tier is not equal")
	assert.Equal(t, registerResp.Uid, profile.IdentityUid, "identity uid is not equal")
	assert.NotZero(t, profile.CreatedAt, "created at is zero")

	// one notification record was written
	notificationIds, err := storeRepo.GetNotificationsIds(ctx)
	require.NoError(t, err)
	require.Len(t, notificationIds, 1, "exactly one notification must exist")
	notification, err := storeRepo.GetNotification(ctx, notificationIds[0])
	require.NoError(t, err)
	assert.Contains(t, notification.Text, registerParams.Name)

	// a second registration with the same email is rejected
	_, err = memberService.Register(ctx, &registerParams)
	require.ErrorIs(t, err, member.ErrEmailAlreadyInUse)
	assert.Equal(t, "Email already in use.", member.UserMessage(err))

	profileIds, err := storeRepo.GetProfilesIds(ctx)
	require.NoError(t, err)
	assert.Len(t, profileIds, 1, "rejected registration must not write a profile")

	t.Log(r.Keys(ctx, "*").Val())
}

type fixedMetadata struct{}

func (fixedMetadata) Views() int       { return 42 }
func (fixedMetadata) Duration() string { return "7:07" }

func TestCatalogFlow(t *testing.T) {
	s := miniredis.RunT(t)
	r := redis.NewClient(&redis.Options{Addr: s.Addr()})

	storeRepo := storeRedis.NewRepo(r, slog.Default())
	catalogService := catalog.NewService(storeRepo, fixedMetadata{}, slog.Default())

	ctx := context.Background()

	_, err := catalogService.AddVideo(ctx, &catalog.AddVideoParams{
		Title:    "Full Body Burn",
		Channel:  "FitClub Originals",
		Category: "strength",
		VideoURL: "https://cdn.example.com/burn.mp4",
	})
	require.NoError(t, err)
	_, err = catalogService.AddVideo(ctx, &catalog.AddVideoParams{
		Title:    "Cooldown",
		Channel:  "FitClub Originals",
		VideoURL: "https://cdn.example.com/cooldown.mp4",
	})
	require.NoError(t, err)

	groups, err := catalogService.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "strength", groups[0].Category)
	assert.Equal(t, catalog.UncategorizedBucket, groups[1].Category)
	assert.Equal(t, 42, groups[0].Workouts[0].Views)
	assert.Equal(t, "7:07", groups[0].Workouts[0].Duration)
}
