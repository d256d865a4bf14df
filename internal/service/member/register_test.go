package member

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/server/internal/repository/store"
	"github.com/fitclub/server/internal/service/identity"
)

type fakeIdentity struct {
	createErr   error
	createCalls int
	deleteCalls []string
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, params *identity.CreateAccountParams) (identity.CreateAccountResponse, error) {
	f.createCalls++
	if f.createErr != nil {
		return identity.CreateAccountResponse{}, f.createErr
	}

	return identity.CreateAccountResponse{Uid: "uid-1", Token: "token-1"}, nil
}

func (f *fakeIdentity) DeleteAccount(ctx context.Context, uid string) error {
	f.deleteCalls = append(f.deleteCalls, uid)
	return nil
}

type fakeProfileRepo struct {
	profileErr      error
	notificationErr error
	profiles        []*store.SetProfileParams
	notifications   []*store.SetNotificationParams
}

func (f *fakeProfileRepo) SetProfile(ctx context.Context, params *store.SetProfileParams) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	f.profiles = append(f.profiles, params)
	return nil
}

func (f *fakeProfileRepo) SetNotification(ctx context.Context, params *store.SetNotificationParams) error {
	if f.notificationErr != nil {
		return f.notificationErr
	}
	f.notifications = append(f.notifications, params)
	return nil
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, profileId string) (store.Profile, error) {
	return store.Profile{}, store.ErrProfileNotFound
}

func validParams() *RegisterParams {
	return &RegisterParams{
		Name:           "Jordan Pike",
		Email:          "jordan@example.com",
		Password:       "secret123",
		MembershipTier: TierPremium,
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterParams)
		wantErr error
	}{
		{"empty name", func(p *RegisterParams) { p.Name = "" }, ErrNameRequired},
		{"whitespace name", func(p *RegisterParams) { p.Name = "   " }, ErrNameRequired},
		{"empty email", func(p *RegisterParams) { p.Email = "" }, ErrEmailRequired},
		{"email without at", func(p *RegisterParams) { p.Email = "jordan.example.com" }, ErrInvalidEmail},
		{"email without domain", func(p *RegisterParams) { p.Email = "jordan@" }, ErrInvalidEmail},
		{"empty password", func(p *RegisterParams) { p.Password = "" }, ErrPasswordRequired},
		{"short password", func(p *RegisterParams) { p.Password = "12345" }, ErrWeakPassword},
		{"unknown tier", func(p *RegisterParams) { p.MembershipTier = "gold" }, ErrInvalidMembershipTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identitySvc := &fakeIdentity{}
			profileRepo := &fakeProfileRepo{}
			service := NewService(identitySvc, profileRepo, slog.Default())

			params := validParams()
			tt.mutate(params)

			_, err := service.Register(context.Background(), params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, identitySvc.createCalls, "identity must not be contacted on validation failure")
			assert.Empty(t, profileRepo.profiles, "no profile write on validation failure")
			assert.Empty(t, profileRepo.notifications, "no notification write on validation failure")
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	identitySvc := &fakeIdentity{}
	profileRepo := &fakeProfileRepo{}
	service := NewService(identitySvc, profileRepo, slog.Default())

	resp, err := service.Register(context.Background(), validParams())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ProfileId)
	assert.Equal(t, "uid-1", resp.Uid)
	assert.Equal(t, "token-1", resp.Token)

	require.Len(t, profileRepo.profiles, 1)
	profile := profileRepo.profiles[0]
	assert.Equal(t, "Jordan Pike", profile.Name)
	assert.Equal(t, "jordan@example.com", profile.Email)
	assert.Equal(t, string(TierPremium), profile.MembershipTier)
	assert.Equal(t, "uid-1", profile.IdentityUid)
	assert.NotZero(t, profile.CreatedAt)

	require.Len(t, profileRepo.notifications, 1, "success notification fires exactly once")
	assert.Contains(t, profileRepo.notifications[0].Text, "Jordan Pike")
	assert.Empty(t, identitySvc.deleteCalls)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	identitySvc := &fakeIdentity{createErr: identity.ErrEmailAlreadyInUse}
	profileRepo := &fakeProfileRepo{}
	service := NewService(identitySvc, profileRepo, slog.Default())

	_, err := service.Register(context.Background(), validParams())
	require.ErrorIs(t, err, ErrEmailAlreadyInUse)
	assert.Equal(t, "Email already in use.", UserMessage(err))
	assert.Empty(t, profileRepo.profiles, "no store write after identity rejection")
	assert.Empty(t, profileRepo.notifications)
}

func TestRegisterProfileWriteCompensation(t *testing.T) {
	identitySvc := &fakeIdentity{}
	profileRepo := &fakeProfileRepo{profileErr: errors.New("permission denied")}
	service := NewService(identitySvc, profileRepo, slog.Default())

	_, err := service.Register(context.Background(), validParams())
	require.ErrorIs(t, err, ErrProfileWriteFailed)
	assert.Equal(t, []string{"uid-1"}, identitySvc.deleteCalls, "orphaned identity must be deleted")
	assert.Empty(t, profileRepo.notifications, "no notification after profile write failure")
}

func TestRegisterNotificationFailureIsBestEffort(t *testing.T) {
	identitySvc := &fakeIdentity{}
	profileRepo := &fakeProfileRepo{notificationErr: errors.New("service unavailable")}
	service := NewService(identitySvc, profileRepo, slog.Default())

	resp, err := service.Register(context.Background(), validParams())
	require.NoError(t, err, "notification failure must not fail the registration")
	assert.NotEmpty(t, resp.ProfileId)
	require.Len(t, profileRepo.profiles, 1)
	assert.Empty(t, identitySvc.deleteCalls)
}

func TestRegisterInFlightDedup(t *testing.T) {
	identitySvc := &fakeIdentity{}
	profileRepo := &fakeProfileRepo{}
	service := NewService(identitySvc, profileRepo, slog.Default())

	require.True(t, service.beginSubmission("Jordan@Example.com"))
	defer service.endSubmission("Jordan@Example.com")

	_, err := service.Register(context.Background(), validParams())
	require.ErrorIs(t, err, ErrSubmissionInFlight, "case-insensitive email claim blocks the duplicate")
	assert.Equal(t, 0, identitySvc.createCalls)
}
