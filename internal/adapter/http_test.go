// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter returns an httpStorageAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpStorageAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPStorageAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpStorageAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPStorageAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPStorageAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://storage.example.com/", want: "https://storage.example.com"},
		{raw: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetUsers ────────────────────────────────────────────────────────────────

func TestGetUsers_Success(t *testing.T) {
	want := []models.User{
		{ID: "u-1", Name: "Admin", Phone: "3000000000", Role: models.RoleAdmin, PasswordHash: "h1"},
		{ID: "u-2", Name: "Ayesha", Phone: "3491234567", Role: models.RoleUser, PasswordHash: "h2"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetUsers_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-from-ctx", r.Header.Get(TraceIDHeader))
		writeJSON(t, w, http.StatusOK, []models.User{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUsers(utils.WithTraceID(context.Background(), "trace-from-ctx"))
	require.NoError(t, err)
}

func TestGetUsers_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUsers(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestGetUsers_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUsers(context.Background())
	require.Error(t, err)
}

func TestGetUsers_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetUsers(context.Background())
	require.Error(t, err)
}

// ── AddUser ─────────────────────────────────────────────────────────────────

func TestAddUser_SignsBody(t *testing.T) {
	user := models.User{ID: "u-3", Name: "Bilal", Phone: "3001112222", Role: models.RoleUser, PasswordHash: "hash"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.VerifyHash(body, r.Header.Get(utils.HashHeader)))

		var got models.User
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.AddUser(context.Background(), user))
}

func TestAddUser_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "phone already exists", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddUser(context.Background(), models.User{ID: "u-1"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "phone already exists")
}

func TestAddUser_NoHashKey_NoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a, err := NewHTTPStorageAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, a.AddUser(context.Background(), models.User{ID: "u-1"}))
}

// ── VerifySession ───────────────────────────────────────────────────────────

func TestVerifySession(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		want    bool
		wantErr error
	}{
		{name: "valid", status: http.StatusOK, body: verifyResponse{Valid: true}, want: true},
		{name: "invalid", status: http.StatusOK, body: verifyResponse{Valid: false}, want: false},
		{name: "not found is invalid", status: http.StatusNotFound, body: utils.ErrorBody{Error: "not found"}, want: false},
		{name: "server error", status: http.StatusServiceUnavailable, body: utils.ErrorBody{Error: "down"}, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/users/user-7/verify", r.URL.Path)
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.VerifySession(context.Background(), "user-7")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── record collections ──────────────────────────────────────────────────────

func TestGetGuests_SendsUserAndRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/guests/", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "ADMIN", r.URL.Query().Get("role"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"g-1","name":"Khan","men":"2","women":null,"children":1,"rsvpStatus":"Accepted"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	guests, err := a.GetGuests(context.Background(), "user-1", models.RoleAdmin)

	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, 3, guests[0].Headcount())
	assert.True(t, guests[0].RSVPStatus.IsConfirmed())
}

func TestGetFinance_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/finance/", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"f-1","type":"Income","amount":"1000"},{"id":"f-2","type":"Expense","amount":100}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	entries, err := a.GetFinance(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1000.0, entries[0].Amount.Float())
}

func TestGetTasks_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "user_id is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTasks(context.Background(), "")

	require.ErrorIs(t, err, ErrBadRequest)
}

func TestGetTasks_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Task{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTasks(ctx, "user-1")
	require.ErrorIs(t, err, context.Canceled)
}
