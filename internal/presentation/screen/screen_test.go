package screen

import (
	"context"
	"testing"

	"authscreen/internal/domain/entity"
	domainerrors "authscreen/internal/domain/errors"
	mockSvc "authscreen/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeController is a scripted AuthController.
type fakeController struct {
	state        entity.AuthState
	configErr    string
	signInErr    error
	signOutErr   error
	signInCalls  int
	signOutCalls int
}

func (f *fakeController) Start(context.Context) {}

func (f *fakeController) SignIn(context.Context) error {
	f.signInCalls++

	return f.signInErr
}

func (f *fakeController) SignOut(context.Context) error {
	f.signOutCalls++
	if f.signOutErr == nil {
		f.state.User = nil
	}

	return f.signOutErr
}

func (f *fakeController) State() entity.AuthState { return f.state }

func (f *fakeController) ConfigError() string { return f.configErr }

type screenFixtures struct {
	screen     *Screen
	controller *fakeController
	confirmer  *mockSvc.MockConfirmer
	alerter    *mockSvc.MockAlerter
}

func createTestScreen(t *testing.T, controller *fakeController) screenFixtures {
	confirmer := mockSvc.NewMockConfirmer(t)
	alerter := mockSvc.NewMockAlerter(t)

	return screenFixtures{
		screen:     New(Params{Controller: controller, Confirmer: confirmer, Alerter: alerter}),
		controller: controller,
		confirmer:  confirmer,
		alerter:    alerter,
	}
}

func testUser(name string) *entity.AuthenticatedUser {
	return entity.NewAuthenticatedUser(entity.UserParams{
		ID:          "user-1",
		Email:       "ada@example.com",
		DisplayName: name,
		Provider:    entity.ProviderTypeGoogle,
	})
}

func TestScreen_Render(t *testing.T) {
	tests := []struct {
		name  string
		ctrl  *fakeController
		check func(t *testing.T, m Model)
	}{
		{
			name: "config error wins over everything",
			ctrl: &fakeController{
				configErr: "Google Sign-In is not configured. Set GOOGLE_WEB_CLIENT_ID to enable sign in.",
				state:     entity.AuthState{User: testUser("Ada"), Error: "old"},
			},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, KindConfigError, m.Kind)
				assert.Contains(t, m.ConfigError, "GOOGLE_WEB_CLIENT_ID")
				assert.Nil(t, m.SignIn)
				assert.Nil(t, m.Profile)
			},
		},
		{
			name: "signed out idle",
			ctrl: &fakeController{state: entity.AuthState{Configured: true}},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, KindSignedOut, m.Kind)
				require.NotNil(t, m.SignIn)
				assert.Equal(t, Button{Label: "Sign in with Google"}, *m.SignIn)
			},
		},
		{
			name: "signed out loading",
			ctrl: &fakeController{state: entity.AuthState{Configured: true, Loading: true}},
			check: func(t *testing.T, m Model) {
				assert.True(t, m.Loading)
				assert.Equal(t, Button{Label: "Signing in...", Disabled: true}, *m.SignIn)
			},
		},
		{
			name: "signed out not yet configured",
			ctrl: &fakeController{},
			check: func(t *testing.T, m Model) {
				assert.True(t, m.SignIn.Disabled)
			},
		},
		{
			name: "signed out with error",
			ctrl: &fakeController{state: entity.AuthState{Configured: true, Error: "Sign in was cancelled"}},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, "Sign in was cancelled", m.Error)
				assert.False(t, m.SignIn.Disabled)
			},
		},
		{
			name: "signed in",
			ctrl: &fakeController{state: entity.AuthState{Configured: true, User: testUser("Ada Lovelace")}},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, KindSignedIn, m.Kind)
				assert.Nil(t, m.SignIn)
				require.NotNil(t, m.Profile)
				assert.Equal(t, "AL", m.Profile.Initials)
				assert.Equal(t, "Sign Out", m.Profile.SignOutLabel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestScreen(t, tt.ctrl)
			tt.check(t, fx.screen.Render())
		})
	}
}

func TestScreen_SignIn(t *testing.T) {
	fx := createTestScreen(t, &fakeController{state: entity.AuthState{Configured: true}})

	require.NoError(t, fx.screen.SignIn(context.Background()))
	assert.Equal(t, 1, fx.controller.signInCalls)
}

func TestScreen_SignIn_RefusedOnConfigError(t *testing.T) {
	fx := createTestScreen(t, &fakeController{configErr: "not configured"})

	err := fx.screen.SignIn(context.Background())

	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindNotConfigured, kind)
	assert.Zero(t, fx.controller.signInCalls)
}

func TestScreen_RequestSignOut_NotSignedIn(t *testing.T) {
	fx := createTestScreen(t, &fakeController{})

	ran, err := fx.screen.RequestSignOut(context.Background())

	assert.False(t, ran)
	assert.ErrorIs(t, err, domainerrors.ErrNotSignedIn)
}

func TestScreen_RequestSignOut_Confirmed(t *testing.T) {
	ctx := context.Background()
	fx := createTestScreen(t, &fakeController{state: entity.AuthState{User: testUser("Ada")}})
	fx.confirmer.EXPECT().Confirm(ctx, "Sign Out", "Are you sure you want to sign out?").Return(true).Once()

	ran, err := fx.screen.RequestSignOut(ctx)

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, fx.controller.signOutCalls)
	assert.Equal(t, KindSignedOut, fx.screen.Render().Kind)
}

func TestScreen_RequestSignOut_Declined(t *testing.T) {
	ctx := context.Background()
	fx := createTestScreen(t, &fakeController{state: entity.AuthState{User: testUser("Ada")}})
	fx.confirmer.EXPECT().Confirm(ctx, mock.Anything, mock.Anything).Return(false).Once()

	ran, err := fx.screen.RequestSignOut(ctx)

	require.NoError(t, err)
	assert.False(t, ran)
	assert.Zero(t, fx.controller.signOutCalls)
}

func TestScreen_RequestSignOut_FailureAlerts(t *testing.T) {
	ctx := context.Background()
	fx := createTestScreen(t, &fakeController{
		state:      entity.AuthState{User: testUser("Ada")},
		signOutErr: domainerrors.SignOutFailed("network down", nil),
	})
	fx.confirmer.EXPECT().Confirm(ctx, mock.Anything, mock.Anything).Return(true).Once()
	fx.alerter.EXPECT().Alert(ctx, "Error", "Sign out failed: network down").Return().Once()

	ran, err := fx.screen.RequestSignOut(ctx)

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, KindSignedIn, fx.screen.Render().Kind)
}

func TestScreen_ViewFollowsUser(t *testing.T) {
	ctrl := &fakeController{state: entity.AuthState{User: testUser("Ada Lovelace")}}
	fx := createTestScreen(t, ctrl)

	assert.Equal(t, "AL", fx.screen.Render().Profile.Initials)

	ctrl.state.User = testUser("Grace Hopper")
	assert.Equal(t, "GH", fx.screen.Render().Profile.Initials)
}
