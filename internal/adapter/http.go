package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the client-side trace identifier of an operation.
const TraceIDHeader = "X-Trace-ID"

type httpStorageAdapter struct {
	client *utils.HTTPClient

	hashKey string
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// NewHTTPStorageAdapter constructs an HTTP/REST implementation of
// [StorageAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and initialises the shared HMAC
// hasher pool used to sign request bodies when a hash key is configured.
//
// Returns [ErrInvalidAddress] (wrapped) if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a URL.
func NewHTTPStorageAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (StorageAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpStorageAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUsers implements [StorageAdapter]. GET /api/users/.
func (h *httpStorageAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/api/users/", nil, &users); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

// AddUser implements [StorageAdapter]. POST /api/users/ with the user as body.
// The password hash travels only on this call and on GetUsers.
func (h *httpStorageAdapter) AddUser(ctx context.Context, user models.User) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	resp, err := h.signedRequest(ctx, body).Post("/api/users/")
	if err != nil {
		return fmt.Errorf("add user request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifySession implements [StorageAdapter]. GET /api/users/{userID}/verify.
// A 404 is reported as an invalid session rather than as an error.
func (h *httpStorageAdapter) VerifySession(ctx context.Context, userID string) (bool, error) {
	var res verifyResponse
	err := h.getJSON(ctx, "/api/users/"+url.PathEscape(userID)+"/verify", nil, &res)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify session: %w", err)
	}
	return res.Valid, nil
}

// GetGuests implements [StorageAdapter]. GET /api/guests/?user_id=&role=.
func (h *httpStorageAdapter) GetGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error) {
	var guests []models.Guest
	query := map[string]string{"user_id": userID, "role": string(role)}
	if err := h.getJSON(ctx, "/api/guests/", query, &guests); err != nil {
		return nil, fmt.Errorf("get guests: %w", err)
	}
	return guests, nil
}

// GetFinance implements [StorageAdapter]. GET /api/finance/?user_id=.
func (h *httpStorageAdapter) GetFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error) {
	var entries []models.FinanceEntry
	if err := h.getJSON(ctx, "/api/finance/", map[string]string{"user_id": userID}, &entries); err != nil {
		return nil, fmt.Errorf("get finance: %w", err)
	}
	return entries, nil
}

// GetTasks implements [StorageAdapter]. GET /api/tasks/?user_id=.
func (h *httpStorageAdapter) GetTasks(ctx context.Context, userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := h.getJSON(ctx, "/api/tasks/", map[string]string{"user_id": userID}, &tasks); err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}
	return tasks, nil
}

func (h *httpStorageAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := h.request(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// request returns a resty request bound to ctx and tagged with the trace ID
// found in ctx, or a fresh one.
func (h *httpStorageAdapter) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceID.Generate()
	}

	h.logger.Debug().Str("trace_id", traceID).Msg("outbound storage request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}

// signedRequest attaches body as JSON and, when a hash key is configured,
// its HMAC-SHA256 in the HashSHA256 header.
func (h *httpStorageAdapter) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashHex(body))
	}
	return req
}
