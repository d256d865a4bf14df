package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fitclub/server/internal/repository/identity"
)

type repo struct {
	rc     *redis.Client
	logger *slog.Logger
}

func NewRepo(rc *redis.Client, logger *slog.Logger) *repo {
	return &repo{
		rc:     rc,
		logger: logger,
	}
}

func (r repo) getIdentityKey(uid string) string {
	return "identity:" + uid
}

func (r repo) getEmailKey(email string) string {
	return "identity:email:" + email
}

// SetIdentity claims the email and stores the credential record. The email
// claim is the uniqueness guard: a second claim for the same email fails with
// ErrEmailTaken before any record is written.
func (r repo) SetIdentity(ctx context.Context, params *identity.SetIdentityParams) error {
	claimed, err := r.rc.SetNX(ctx, r.getEmailKey(params.Email), params.Uid, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim email: %w", err)
	}

	if !claimed {
		return identity.ErrEmailTaken
	}

	record := identity.Identity{
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    params.CreatedAt,
	}
	if err := r.rc.HSet(ctx, r.getIdentityKey(params.Uid), record).Err(); err != nil {
		// release the claim so the email is not orphaned
		if delErr := r.rc.Del(ctx, r.getEmailKey(params.Email)).Err(); delErr != nil {
			r.logger.ErrorContext(ctx, "failed to release email claim", "error", delErr)
		}

		return fmt.Errorf("failed to set identity: %w", err)
	}

	return nil
}

func (r repo) GetIdentity(ctx context.Context, uid string) (identity.Identity, error) {
	identityKey := r.getIdentityKey(uid)
	res, err := r.rc.Exists(ctx, identityKey).Result()
	if err != nil {
		return identity.Identity{}, fmt.Errorf("failed to check if identity exists: %w", err)
	}

	if res == 0 {
		return identity.Identity{}, identity.ErrIdentityNotFound
	}

	var record identity.Identity
	if err := r.rc.HGetAll(ctx, identityKey).Scan(&record); err != nil {
		return identity.Identity{}, fmt.Errorf("failed to get identity: %w", err)
	}

	return record, nil
}

func (r repo) GetUidByEmail(ctx context.Context, email string) (string, error) {
	uid, err := r.rc.Get(ctx, r.getEmailKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", identity.ErrIdentityNotFound
		}

		return "", fmt.Errorf("failed to get uid by email: %w", err)
	}

	return uid, nil
}

func (r repo) RemoveIdentity(ctx context.Context, uid string) error {
	record, err := r.GetIdentity(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to get identity for removal: %w", err)
	}

	pipe := r.rc.TxPipeline()
	pipe.Del(ctx, r.getIdentityKey(uid))
	pipe.Del(ctx, r.getEmailKey(record.Email))

	if err := r.executePipe(ctx, pipe); err != nil {
		return fmt.Errorf("failed to remove identity: %w", err)
	}

	return nil
}

func (r repo) executePipe(ctx context.Context, pipe redis.Pipeliner) error {
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		for _, cmd := range cmds {
			if err := cmd.Err(); err != nil {
				return err
			}
		}

		return err
	}

	return nil
}
