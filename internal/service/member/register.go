package member

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitclub/server/internal/repository/store"
	"github.com/fitclub/server/internal/service/identity"
)

const minPasswordLength = 6

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	MembershipTier MembershipTier
}

type RegisterResponse struct {
	ProfileId string
	Uid       string
	Token     string
}

func (s *service) validateRegistration(params *RegisterParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return ErrNameRequired
	}

	if params.Email == "" {
		return ErrEmailRequired
	}

	if !emailRegexp.MatchString(params.Email) {
		return ErrInvalidEmail
	}

	if params.Password == "" {
		return ErrPasswordRequired
	}

	if len(params.Password) < minPasswordLength {
		return ErrWeakPassword
	}

	if !params.MembershipTier.Valid() {
		return ErrInvalidMembershipTier
	}

	return nil
}

// Register runs the registration saga: create the account, write the profile
// record, then write a best-effort notification record. Local validation
// failures abort before any external call. If the profile write fails after
// the account was created, the account is deleted so no orphaned identity is
// left behind, and the attempt is reported as resubmittable.
func (s *service) Register(ctx context.Context, params *RegisterParams) (RegisterResponse, error) {
	if err := s.validateRegistration(params); err != nil {
		return RegisterResponse{}, err
	}

	if !s.beginSubmission(params.Email) {
		return RegisterResponse{}, ErrSubmissionInFlight
	}
	defer s.endSubmission(params.Email)

	account, err := s.identity.CreateAccount(ctx, &identity.CreateAccountParams{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailAlreadyInUse):
			return RegisterResponse{}, ErrEmailAlreadyInUse
		case errors.Is(err, identity.ErrInvalidEmail):
			return RegisterResponse{}, ErrInvalidEmail
		case errors.Is(err, identity.ErrWeakPassword):
			return RegisterResponse{}, ErrWeakPassword
		}

		return RegisterResponse{}, fmt.Errorf("failed to create account: %w", err)
	}

	profileId := uuid.NewString()
	if err := s.profileRepo.SetProfile(ctx, &store.SetProfileParams{
		ProfileId:      profileId,
		Name:           params.Name,
		Email:          params.Email,
		MembershipTier: string(params.MembershipTier),
		IdentityUid:    account.Uid,
		CreatedAt:      time.Now().Unix(),
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to set profile, deleting account", "uid", account.Uid, "error", err)

		if delErr := s.identity.DeleteAccount(ctx, account.Uid); delErr != nil {
			// the orphaned identity the compensation exists to prevent
			s.logger.ErrorContext(ctx, "failed to delete account after profile write failure", "uid", account.Uid, "error", delErr)
		}

		return RegisterResponse{}, ErrProfileWriteFailed
	}

	// best-effort: a missing notification record must not fail a registration
	// whose profile was written
	if err := s.profileRepo.SetNotification(ctx, &store.SetNotificationParams{
		NotificationId: uuid.NewString(),
		Text:           fmt.Sprintf("New member registered: %s", params.Name),
		CreatedAt:      time.Now().Unix(),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to set notification", "error", err)
	}

	return RegisterResponse{
		ProfileId: profileId,
		Uid:       account.Uid,
		Token:     account.Token,
	}, nil
}
