package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/guest-nama/internal/app"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(users *fakeUsers, records *fakeRecords) http.Handler {
	return NewHandler(newTestServices(users, records), "", logger.Nop()).Init()
}

func serve(router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// ── users ────────────────────────────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	users := &fakeUsers{list: func(context.Context) ([]models.User, error) {
		return []models.User{{ID: "admin-001", Phone: "3001234567", Role: models.RoleAdmin, PasswordHash: "h"}}, nil
	}}

	rec := serve(newTestRouter(users, nil), http.MethodGet, "/api/users/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]models.User](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "h", got[0].PasswordHash)
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	rec := serve(newTestRouter(nil, nil), http.MethodGet, "/api/users/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddUser(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "phone taken", err: fmt.Errorf("create user: %w", store.ErrPhoneAlreadyExists), wantStatus: http.StatusConflict, wantMsg: app.MsgPhoneAlreadyExists},
		{name: "invalid", err: fmt.Errorf("%w: bad phone", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "admin role", err: service.ErrRoleNotAllowed, wantStatus: http.StatusBadRequest, wantMsg: app.MsgRoleNotAllowed},
		{name: "database down", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUsers{add: func(_ context.Context, u models.User) (models.User, error) {
				if tt.err != nil {
					return models.User{}, tt.err
				}
				u.ID = "user-1"
				return u, nil
			}}

			rec := serve(newTestRouter(users, nil), http.MethodPost, "/api/users/",
				models.User{Name: "Ayesha", Phone: "3491234567", PasswordHash: "secret-hash"})

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeBody[utils.ErrorBody](t, rec).Error)
				return
			}
			assert.NotContains(t, rec.Body.String(), "secret-hash")
			assert.Equal(t, "user-1", decodeBody[models.Session](t, rec).ID)
		})
	}
}

func TestAddUser_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/users/", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	newTestRouter(nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeBody[utils.ErrorBody](t, rec).Error)
}

func TestVerifyUser(t *testing.T) {
	var gotID string
	users := &fakeUsers{verify: func(_ context.Context, userID string) (bool, error) {
		gotID = userID
		return userID == "user-1", nil
	}}
	router := newTestRouter(users, nil)

	rec := serve(router, http.MethodGet, "/api/users/user-1/verify", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, rec.Body.String())
	assert.Equal(t, "user-1", gotID)

	rec = serve(router, http.MethodGet, "/api/users/ghost/verify", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":false}`, rec.Body.String())
}

// ── guests ───────────────────────────────────────────────────────────────────

func TestListGuests_Role(t *testing.T) {
	tests := []struct {
		query    string
		wantRole models.Role
	}{
		{query: "?user_id=u1&role=ADMIN", wantRole: models.RoleAdmin},
		{query: "?user_id=u1&role=USER", wantRole: models.RoleUser},
		{query: "?user_id=u1&role=root", wantRole: models.RoleUser},
		{query: "?user_id=u1", wantRole: models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var gotRole models.Role
			records := &fakeRecords{listGuests: func(_ context.Context, userID string, role models.Role) ([]models.Guest, error) {
				assert.Equal(t, "u1", userID)
				gotRole = role
				return []models.Guest{{ID: "g1"}}, nil
			}}

			rec := serve(newTestRouter(nil, records), http.MethodGet, "/api/guests/"+tt.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantRole, gotRole)
			assert.Len(t, decodeBody[[]models.Guest](t, rec), 1)
		})
	}
}

func TestListGuests_NoUserID(t *testing.T) {
	records := &fakeRecords{listGuests: func(context.Context, string, models.Role) ([]models.Guest, error) {
		return nil, service.ErrValidationNoUserID
	}}

	rec := serve(newTestRouter(nil, records), http.MethodGet, "/api/guests/", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoUserIDProvided, decodeBody[utils.ErrorBody](t, rec).Error)
}

func TestAddGuest(t *testing.T) {
	records := &fakeRecords{addGuest: func(_ context.Context, g models.Guest) (models.Guest, error) {
		g.ID = "g1"
		return g, nil
	}}

	rec := serve(newTestRouter(nil, records), http.MethodPost, "/api/guests/",
		models.Guest{UserID: "u1", Name: "Khan family", Men: 2})

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[models.Guest](t, rec)
	assert.Equal(t, "g1", got.ID)
	assert.Equal(t, 2, got.Men.Count())
}

func TestAddGuest_UnknownUser(t *testing.T) {
	records := &fakeRecords{addGuest: func(context.Context, models.Guest) (models.Guest, error) {
		return models.Guest{}, store.ErrUnknownUser
	}}

	rec := serve(newTestRouter(nil, records), http.MethodPost, "/api/guests/", models.Guest{UserID: "ghost", Name: "A"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUnknownUser, decodeBody[utils.ErrorBody](t, rec).Error)
}

func TestUpdateGuestStatus(t *testing.T) {
	var got models.GuestStatusUpdate
	records := &fakeRecords{updateStatus: func(_ context.Context, u models.GuestStatusUpdate) error {
		got = u
		return nil
	}}

	// the URL parameter wins over the body
	rec := serve(newTestRouter(nil, records), http.MethodPatch, "/api/guests/g1/status",
		models.GuestStatusUpdate{GuestID: "other", RSVPStatus: models.RSVPConfirmed})

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, models.GuestStatusUpdate{GuestID: "g1", RSVPStatus: models.RSVPConfirmed}, got)
}

func TestDeleteGuest(t *testing.T) {
	records := &fakeRecords{deleteGuest: func(_ context.Context, guestID string) error {
		if guestID != "g1" {
			return store.ErrGuestNotFound
		}
		return nil
	}}
	router := newTestRouter(nil, records)

	rec := serve(router, http.MethodDelete, "/api/guests/g1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/guests/g2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgGuestNotFound, decodeBody[utils.ErrorBody](t, rec).Error)
}

// ── finance & tasks ──────────────────────────────────────────────────────────

func TestFinanceRoutes(t *testing.T) {
	records := &fakeRecords{
		listFinance: func(_ context.Context, userID string) ([]models.FinanceEntry, error) {
			return []models.FinanceEntry{{ID: "f1", UserID: userID, Type: models.FinanceIncome, Amount: 1000}}, nil
		},
		addFinance: func(_ context.Context, e models.FinanceEntry) (models.FinanceEntry, error) {
			e.ID = "f2"
			return e, nil
		},
	}
	router := newTestRouter(nil, records)

	rec := serve(router, http.MethodGet, "/api/finance/?user_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]models.FinanceEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)

	rec = serve(router, http.MethodPost, "/api/finance/", models.FinanceEntry{UserID: "u1", Type: models.FinanceExpense, Amount: 300})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "f2", decodeBody[models.FinanceEntry](t, rec).ID)
}

func TestTaskRoutes(t *testing.T) {
	var completion models.TaskCompletionUpdate
	records := &fakeRecords{
		listTasks: func(context.Context, string) ([]models.Task, error) {
			return []models.Task{{ID: "t1", Title: "Book hall"}}, nil
		},
		addTask: func(_ context.Context, task models.Task) (models.Task, error) {
			task.ID = "t2"
			return task, nil
		},
		setCompleted: func(_ context.Context, u models.TaskCompletionUpdate) error {
			if u.TaskID == "missing" {
				return store.ErrTaskNotFound
			}
			completion = u
			return nil
		},
	}
	router := newTestRouter(nil, records)

	rec := serve(router, http.MethodGet, "/api/tasks/?user_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Task](t, rec), 1)

	rec = serve(router, http.MethodPost, "/api/tasks/", models.Task{UserID: "u1", Title: "Order cake"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "t2", decodeBody[models.Task](t, rec).ID)

	rec = serve(router, http.MethodPatch, "/api/tasks/t1/complete", models.TaskCompletionUpdate{IsCompleted: true})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, models.TaskCompletionUpdate{TaskID: "t1", IsCompleted: true}, completion)

	rec = serve(router, http.MethodPatch, "/api/tasks/missing/complete", models.TaskCompletionUpdate{IsCompleted: true})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgTaskNotFound, decodeBody[utils.ErrorBody](t, rec).Error)
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(nil, nil)

	for _, target := range []string{"/", "/api/", "/api/unknown/", "/api/users/u1"} {
		rec := serve(router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil, nil)

	tests := []struct{ method, target string }{
		{http.MethodPut, "/api/users/"},
		{http.MethodDelete, "/api/finance/"},
		{http.MethodPost, "/api/version/"},
		{http.MethodGet, "/api/tasks/t1/complete"},
	}
	for _, tt := range tests {
		rec := serve(router, tt.method, tt.target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.target)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(nil, nil)

	rec := serve(router, http.MethodGet, "/api/version/", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-7")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-7", rec.Header().Get(traceIDHeader))
}

func TestInit_SignedBodiesWithHashKey(t *testing.T) {
	utils.InitHasherPool("route-key")
	router := NewHandler(newTestServices(nil, nil), "route-key", logger.Nop()).Init()

	body := []byte(`{"userId":"u1","title":"Order cake"}`)

	unsigned := httptest.NewRequest(http.MethodPost, "/api/tasks/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, unsigned)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	signed := httptest.NewRequest(http.MethodPost, "/api/tasks/", bytes.NewReader(body))
	signed.Header.Set(utils.HashHeader, utils.HashHex(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, signed)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// reads are never signed
	rec = serve(router, http.MethodGet, "/api/tasks/?user_id=u1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_DeleteGuestWithHashKey_NeedsNoSignature(t *testing.T) {
	utils.InitHasherPool("route-key")
	records := &fakeRecords{deleteGuest: func(context.Context, string) error { return nil }}
	router := NewHandler(newTestServices(nil, records), "route-key", logger.Nop()).Init()

	rec := serve(router, http.MethodDelete, "/api/guests/g1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
