package identity

import (
	"context"
	"log/slog"

	repo "github.com/fitclub/server/internal/repository/identity"
	"github.com/fitclub/server/pkg/randstr"
)

const uidLength = 28

type iIdentityRepo interface {
	SetIdentity(context.Context, *repo.SetIdentityParams) error
	GetIdentity(ctx context.Context, uid string) (repo.Identity, error)
	GetUidByEmail(ctx context.Context, email string) (string, error)
	RemoveIdentity(ctx context.Context, uid string) error
}

type iGenerator interface {
	GenerateRandomString(length int) string
}

type service struct {
	identityRepo iIdentityRepo
	generator    iGenerator
	secret       string
	logger       *slog.Logger
}

func NewService(identityRepo iIdentityRepo, secret string, logger *slog.Logger) *service {
	s := service{
		identityRepo: identityRepo,
		secret:       secret,
		logger:       logger,
	}

	letterBytes := []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	s.generator = randstr.New(letterBytes)

	return &s
}
