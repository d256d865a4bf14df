package identity

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	repo "github.com/fitclub/server/internal/repository/identity"
)

const minPasswordLength = 6

// basic local@domain shape, no whitespace on either side of the @
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

type CreateAccountParams struct {
	Email    string
	Password string
}

type CreateAccountResponse struct {
	Uid   string
	Token string
}

// CreateAccount classifies bad inputs before touching the credential store:
// a malformed email or weak password never claims the email.
func (s service) CreateAccount(ctx context.Context, params *CreateAccountParams) (CreateAccountResponse, error) {
	if !emailRegexp.MatchString(params.Email) {
		return CreateAccountResponse{}, ErrInvalidEmail
	}

	if len(params.Password) < minPasswordLength {
		return CreateAccountResponse{}, ErrWeakPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateAccountResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	uid := s.generator.GenerateRandomString(uidLength)
	if err := s.identityRepo.SetIdentity(ctx, &repo.SetIdentityParams{
		Uid:          uid,
		Email:        params.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().Unix(),
	}); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return CreateAccountResponse{}, ErrEmailAlreadyInUse
		}

		return CreateAccountResponse{}, fmt.Errorf("failed to set identity: %w", err)
	}

	token, err := s.generateJWT(uid)
	if err != nil {
		return CreateAccountResponse{}, fmt.Errorf("failed to generate jwt: %w", err)
	}

	return CreateAccountResponse{
		Uid:   uid,
		Token: token,
	}, nil
}

// DeleteAccount removes the credential record and releases the email claim.
// Used as the compensating action when a registration fails after the
// account was created.
func (s service) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.identityRepo.RemoveIdentity(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrIdentityNotFound) {
			return ErrAccountNotFound
		}

		return fmt.Errorf("failed to remove identity: %w", err)
	}

	return nil
}
