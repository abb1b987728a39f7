package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/guest-nama/internal/adapter"
	"github.com/MKhiriev/guest-nama/internal/crypto"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
)

// SessionManagerOption customizes a session manager.
type SessionManagerOption func(*sessionManager)

// WithInvalidateHook registers hook to run after the storage server rejects
// the active session and the session has been cleared. The client uses it to
// drop every piece of derived state.
func WithInvalidateHook(hook func()) SessionManagerOption {
	return func(m *sessionManager) {
		m.hooks = append(m.hooks, hook)
	}
}

// WithClock replaces time.Now as the source of signup timestamps.
func WithClock(now func() time.Time) SessionManagerOption {
	return func(m *sessionManager) {
		m.now = now
	}
}

type sessionManager struct {
	adapter  adapter.StorageAdapter
	sessions store.SessionStore
	hasher   crypto.Hasher
	ids      IDGenerator

	job      RevalidationJob
	interval time.Duration

	// opMu serializes the operations that change the session so that the
	// revalidation job is never started and stopped concurrently.
	opMu sync.Mutex

	mu      sync.RWMutex
	current models.Session
	loading bool

	invalidated chan struct{}
	hooks       []func()
	now         func() time.Time

	logger *logger.Logger
}

// NewSessionManager builds the client's SessionManager. interval is the
// revalidation period; zero selects the 5-minute default.
func NewSessionManager(
	storageAdapter adapter.StorageAdapter,
	sessions store.SessionStore,
	hasher crypto.Hasher,
	ids IDGenerator,
	interval time.Duration,
	logger *logger.Logger,
	opts ...SessionManagerOption,
) SessionManager {
	m := &sessionManager{
		adapter:     storageAdapter,
		sessions:    sessions,
		hasher:      hasher,
		ids:         ids,
		interval:    interval,
		loading:     true,
		invalidated: make(chan struct{}, 1),
		now:         time.Now,
		logger:      logger,
	}
	m.job = NewRevalidationJob(storageAdapter, m.handleInvalidSession, logger)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements SessionManager.
//
// The persisted record is trusted only after VerifySession confirms it; on
// success the session is restored from the record without refetching the
// account. The only error returned is a failure to clear the store while
// failing closed.
func (m *sessionManager) Init(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	defer m.setLoading(false)

	log := logger.FromContext(ctx)

	session, found, err := m.sessions.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("stored session unreadable, clearing")
		return m.clear(ctx)
	}
	if !found {
		log.Debug().Msg("no stored session")
		return nil
	}

	valid, err := m.adapter.VerifySession(ctx, session.ID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", session.ID).Msg("session check failed, clearing")
		return m.clear(ctx)
	}
	if !valid {
		log.Info().Str("user_id", session.ID).Msg("stored session rejected, clearing")
		return m.clear(ctx)
	}

	m.activate(ctx, session)
	log.Info().Str("user_id", session.ID).Msg("session restored")
	return nil
}

// Login implements SessionManager.
func (m *sessionManager) Login(ctx context.Context, phone, password string) (bool, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	log := logger.FromContext(ctx)

	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return false, nil
	}

	users, err := m.adapter.GetUsers(ctx)
	if err != nil {
		log.Err(err).Msg("login: fetching users failed")
		return false, fmt.Errorf("%w: %w", ErrFetchUsers, err)
	}

	for _, user := range users {
		if utils.NormalizePhone(user.Phone) != normalized {
			continue
		}
		if !m.hasher.Compare(password, user.PasswordHash) {
			continue
		}

		if err = m.establish(ctx, user.Session()); err != nil {
			return false, err
		}
		log.Info().Str("user_id", user.ID).Msg("logged in")
		return true, nil
	}

	log.Info().Msg("login rejected: no matching account")
	return false, nil
}

// Signup implements SessionManager. Uniqueness is checked against the
// current user list first; the storage server enforces it again and a 409
// from it also yields false.
func (m *sessionManager) Signup(ctx context.Context, name, phone, password string) (bool, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	log := logger.FromContext(ctx)

	normalized := utils.NormalizePhone(phone)
	name = strings.TrimSpace(name)
	if normalized == "" || name == "" {
		return false, nil
	}

	users, err := m.adapter.GetUsers(ctx)
	if err != nil {
		log.Err(err).Msg("signup: fetching users failed")
		return false, fmt.Errorf("%w: %w", ErrFetchUsers, err)
	}
	for _, user := range users {
		if utils.NormalizePhone(user.Phone) == normalized {
			log.Info().Msg("signup rejected: phone already registered")
			return false, nil
		}
	}

	user := models.User{
		ID:           m.ids.Generate(),
		Name:         name,
		Phone:        normalized,
		Role:         models.RoleUser,
		PasswordHash: m.hasher.Hash(password),
		CreatedAt:    m.now().UTC(),
	}

	if err = m.adapter.AddUser(ctx, user); err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			log.Info().Msg("signup rejected by storage server: phone already registered")
			return false, nil
		}
		log.Err(err).Msg("signup: creating account failed")
		return false, fmt.Errorf("add user: %w", err)
	}

	if err = m.establish(ctx, user.Session()); err != nil {
		return false, err
	}
	log.Info().Str("user_id", user.ID).Msg("signed up")
	return true, nil
}

// Logout implements SessionManager.
func (m *sessionManager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.clear(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("logout: clearing stored session failed")
	}
}

func (m *sessionManager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, !m.current.IsZero()
}

func (m *sessionManager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

func (m *sessionManager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *sessionManager) Invalidated() <-chan struct{} {
	return m.invalidated
}

// establish persists session, then publishes it and arms revalidation.
// A store failure leaves the manager unchanged.
func (m *sessionManager) establish(ctx context.Context, session models.Session) error {
	if err := m.sessions.Set(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", session.ID).Msg("persisting session failed")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	m.activate(ctx, session)
	return nil
}

func (m *sessionManager) activate(ctx context.Context, session models.Session) {
	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	// revalidation lives as long as the session, not the call that created it
	m.job.Start(context.WithoutCancel(ctx), session.ID, m.interval)
}

// clear disarms revalidation and drops the session from memory and store.
// Memory is cleared even when the store fails.
func (m *sessionManager) clear(ctx context.Context) error {
	m.job.Stop()

	m.mu.Lock()
	m.current = models.Session{}
	m.mu.Unlock()

	if err := m.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session store: %w", err)
	}
	return nil
}

func (m *sessionManager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.mu.Unlock()
}

// handleInvalidSession is the revalidation job's callback. A rejection for
// a session that is no longer current is ignored.
func (m *sessionManager) handleInvalidSession(ctx context.Context, userID string) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if current, ok := m.Current(); !ok || current.ID != userID {
		return
	}

	// the job's ctx may already be cancelled; clearing must still happen
	if err := m.clear(context.WithoutCancel(ctx)); err != nil {
		m.logger.Warn().Err(err).Msg("invalidation: clearing stored session failed")
	}

	for _, hook := range m.hooks {
		hook()
	}

	select {
	case m.invalidated <- struct{}{}:
	default:
	}
}
