package member

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/fitclub/server/internal/repository/store"
	"github.com/fitclub/server/internal/service/identity"
)

type iIdentity interface {
	CreateAccount(context.Context, *identity.CreateAccountParams) (identity.CreateAccountResponse, error)
	DeleteAccount(ctx context.Context, uid string) error
}

type iProfileRepo interface {
	SetProfile(context.Context, *store.SetProfileParams) error
	SetNotification(context.Context, *store.SetNotificationParams) error
	GetProfile(ctx context.Context, profileId string) (store.Profile, error)
}

type service struct {
	identity    iIdentity
	profileRepo iProfileRepo
	logger      *slog.Logger

	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

func NewService(identitySvc iIdentity, profileRepo iProfileRepo, logger *slog.Logger) *service {
	return &service{
		identity:    identitySvc,
		profileRepo: profileRepo,
		logger:      logger,
		inFlight:    make(map[string]struct{}),
	}
}

// beginSubmission claims the email for the duration of one registration
// attempt. A second submission for the same email while one is in flight is
// the server-side equivalent of a double-click on a disabled submit button.
func (s *service) beginSubmission(email string) bool {
	key := strings.ToLower(email)

	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	if _, ok := s.inFlight[key]; ok {
		return false
	}

	s.inFlight[key] = struct{}{}

	return true
}

func (s *service) endSubmission(email string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	delete(s.inFlight, strings.ToLower(email))
}
