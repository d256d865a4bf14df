package redis

import (
	"context"
	"fmt"

	"github.com/fitclub/server/internal/repository/store"
)

func (r repo) getProfileKey(profileId string) string {
	return "profile:" + profileId
}

func (r repo) getProfileListKey() string {
	return "profiles"
}

func (r repo) SetProfile(ctx context.Context, params *store.SetProfileParams) error {
	pipe := r.rc.TxPipeline()

	profile := store.Profile{
		Name:           params.Name,
		Email:          params.Email,
		MembershipTier: params.MembershipTier,
		IdentityUid:    params.IdentityUid,
		CreatedAt:      params.CreatedAt,
	}
	pipe.HSet(ctx, r.getProfileKey(params.ProfileId), profile)
	pipe.RPush(ctx, r.getProfileListKey(), params.ProfileId)

	if err := r.executePipe(ctx, pipe); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

func (r repo) GetProfile(ctx context.Context, profileId string) (store.Profile, error) {
	profileKey := r.getProfileKey(profileId)
	res, err := r.rc.Exists(ctx, profileKey).Result()
	if err != nil {
		return store.Profile{}, fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if res == 0 {
		return store.Profile{}, store.ErrProfileNotFound
	}

	var profile store.Profile
	if err := r.rc.HGetAll(ctx, profileKey).Scan(&profile); err != nil {
		return store.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r repo) GetProfilesIds(ctx context.Context) ([]string, error) {
	profileIds, err := r.rc.LRange(ctx, r.getProfileListKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles ids: %w", err)
	}

	return profileIds, nil
}
