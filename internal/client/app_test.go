package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/mock"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{ID: "user-1", Name: "Ayesha", Phone: "3491234567", Role: models.RoleUser}

type appFixture struct {
	app       *App
	sessions  *mock.MockSessionManager
	dashboard *mock.MockDashboard
	out       *bytes.Buffer
}

func newAppFixture(t *testing.T, args ...string) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		sessions:  mock.NewMockSessionManager(ctrl),
		dashboard: mock.NewMockDashboard(ctrl),
		out:       &bytes.Buffer{},
	}

	services := &service.ClientServices{SessionManager: f.sessions, Dashboard: f.dashboard}
	cfg := &config.ClientConfig{
		Args:    args,
		Workers: config.ClientWorkers{RefreshInterval: 5 * time.Millisecond},
	}

	app, err := NewApp(services, cfg, f.out, logger.Nop())
	require.NoError(t, err)
	f.app = app
	return f
}

func TestNewApp_NoCommand(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, &config.ClientConfig{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoCommand)
}

func TestApp_UnknownCommand(t *testing.T) {
	f := newAppFixture(t, "dance")
	require.ErrorIs(t, f.app.Run(context.Background()), ErrUnknownCommand)
}

func TestApp_Login(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		err     error
		wantErr error
	}{
		{name: "success", ok: true},
		{name: "wrong password", ok: false, wantErr: ErrInvalidCredentials},
		{name: "server down", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppFixture(t, "login", "-phone", "0349-1234567", "-password", "secret")
			f.sessions.EXPECT().Login(gomock.Any(), "0349-1234567", "secret").Return(tt.ok, tt.err)
			if tt.ok {
				f.sessions.EXPECT().Current().Return(testSession, true)
			}

			err := f.app.Run(context.Background())

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
			default:
				require.NoError(t, err)
				var printed models.Session
				require.NoError(t, json.Unmarshal(f.out.Bytes(), &printed))
				assert.Equal(t, testSession.ID, printed.ID)
			}
		})
	}
}

func TestApp_Signup(t *testing.T) {
	f := newAppFixture(t, "signup", "-name", "Ayesha", "-phone", "3491234567", "-password", "secret")
	f.sessions.EXPECT().Signup(gomock.Any(), "Ayesha", "3491234567", "secret").Return(true, nil)
	f.sessions.EXPECT().Current().Return(testSession, true)

	require.NoError(t, f.app.Run(context.Background()))
	assert.Contains(t, f.out.String(), `"name": "Ayesha"`)
}

func TestApp_Signup_Rejected(t *testing.T) {
	f := newAppFixture(t, "signup", "-name", "Ayesha", "-phone", "3491234567", "-password", "secret")
	f.sessions.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	require.ErrorIs(t, f.app.Run(context.Background()), ErrSignupRejected)
}

func TestApp_Logout(t *testing.T) {
	f := newAppFixture(t, "logout")
	f.sessions.EXPECT().Logout(gomock.Any())

	require.NoError(t, f.app.Run(context.Background()))
	assert.Equal(t, "logged out\n", f.out.String())
}

func TestApp_Dashboard(t *testing.T) {
	f := newAppFixture(t, "dashboard")
	gomock.InOrder(
		f.sessions.EXPECT().Init(gomock.Any()).Return(nil),
		f.sessions.EXPECT().IsAuthenticated().Return(true),
		f.dashboard.EXPECT().Load(gomock.Any()).Return(models.DerivedMetrics{Finance: models.FinanceMetrics{Balance: 900}}, nil),
	)

	require.NoError(t, f.app.Run(context.Background()))

	var printed models.DerivedMetrics
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &printed))
	assert.Equal(t, 900.0, printed.Finance.Balance)
}

func TestApp_Dashboard_NotLoggedIn(t *testing.T) {
	f := newAppFixture(t, "dashboard")
	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)
	f.sessions.EXPECT().IsAuthenticated().Return(false)

	require.ErrorIs(t, f.app.Run(context.Background()), ErrNotLoggedIn)
	assert.Empty(t, f.out.String())
}

func TestApp_Dashboard_LoadFails(t *testing.T) {
	loadErr := errors.New("tasks unavailable")
	f := newAppFixture(t, "dashboard")
	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)
	f.sessions.EXPECT().IsAuthenticated().Return(true)
	f.dashboard.EXPECT().Load(gomock.Any()).Return(models.DerivedMetrics{}, loadErr)

	require.ErrorIs(t, f.app.Run(context.Background()), loadErr)
}

func TestApp_Whoami(t *testing.T) {
	f := newAppFixture(t, "whoami")
	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)
	f.sessions.EXPECT().IsAuthenticated().Return(true)
	f.sessions.EXPECT().Current().Return(testSession, true)

	require.NoError(t, f.app.Run(context.Background()))
	assert.Contains(t, f.out.String(), testSession.Phone)
}

func TestApp_Watch_StopsOnInvalidation(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newAppFixture(t, "watch")
	invalidated := make(chan struct{}, 1)

	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)
	f.sessions.EXPECT().IsAuthenticated().Return(true)
	f.sessions.EXPECT().Invalidated().Return((<-chan struct{})(invalidated))
	f.dashboard.EXPECT().Load(gomock.Any()).Return(models.DerivedMetrics{}, nil)

	refreshed := make(chan struct{}, 1)
	f.dashboard.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (models.DerivedMetrics, error) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
		return models.DerivedMetrics{}, nil
	}).MinTimes(1)

	go func() {
		<-refreshed
		invalidated <- struct{}{}
	}()

	err := f.app.Run(context.Background())
	require.ErrorIs(t, err, ErrSessionInvalidated)
}

func TestApp_Watch_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newAppFixture(t, "watch")
	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)
	f.sessions.EXPECT().IsAuthenticated().Return(true)
	f.sessions.EXPECT().Invalidated().Return((<-chan struct{})(make(chan struct{})))
	f.dashboard.EXPECT().Load(gomock.Any()).Return(models.DerivedMetrics{}, nil)
	f.dashboard.EXPECT().Refresh(gomock.Any()).Return(models.DerivedMetrics{}, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, f.app.Run(ctx))
}
