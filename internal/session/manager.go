package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/config"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/logger"
	"github.com/steeltrade/storefront-backend/pkg/money"
)

// Manager is the in-memory session registry. Sessions expire after the idle
// TTL; when the registry is full the stalest session is evicted to make room.
type Manager struct {
	cfg       config.SessionConfig
	products  []catalog.Product
	formatter money.Formatter
	logg      *logger.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

// NewManager wires the registry over the shared product list.
func NewManager(cfg config.SessionConfig, products []catalog.Product, formatter money.Formatter, logg *logger.Logger) (*Manager, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("product list required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("price formatter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.IdleTTL <= 0 {
		return nil, fmt.Errorf("idle TTL must be positive")
	}
	if cfg.MaxSessions <= 0 {
		return nil, fmt.Errorf("session cap must be positive")
	}
	return &Manager{
		cfg:       cfg,
		products:  products,
		formatter: formatter,
		logg:      logg,
		sessions:  make(map[uuid.UUID]*Session),
		now:       time.Now,
	}, nil
}

// Create registers a fresh session.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	sess, err := NewSession(m.products, m.formatter)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpiredLocked(ctx)
	if len(m.sessions) >= m.cfg.MaxSessions {
		m.evictStalestLocked(ctx)
	}

	m.sessions[sess.ID()] = sess
	m.logg.Info(m.logg.WithSessionID(ctx, sess.ID().String()), "session created")
	return sess, nil
}

// Get resolves a session id, touching nothing; expired sessions read as
// missing.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok || m.expired(sess) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("session %s not found", id))
	}
	return sess, nil
}

// Count reports the number of live sessions, expired ones included until the
// next sweep.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops every expired session. Called periodically from main.
func (m *Manager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictExpiredLocked(ctx)
}

// Run sweeps on the interval until the context ends.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

func (m *Manager) expired(sess *Session) bool {
	return m.now().Sub(sess.LastSeen()) > m.cfg.IdleTTL
}

func (m *Manager) evictExpiredLocked(ctx context.Context) int {
	evicted := 0
	for id, sess := range m.sessions {
		if m.expired(sess) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.logg.Info(m.logg.WithField(ctx, "evicted", evicted), "idle sessions evicted")
	}
	return evicted
}

func (m *Manager) evictStalestLocked(ctx context.Context) {
	var stalestID uuid.UUID
	var stalestSeen time.Time
	first := true
	for id, sess := range m.sessions {
		seen := sess.LastSeen()
		if first || seen.Before(stalestSeen) {
			stalestID = id
			stalestSeen = seen
			first = false
		}
	}
	if !first {
		delete(m.sessions, stalestID)
		m.logg.Warn(m.logg.WithSessionID(ctx, stalestID.String()), "session cap reached, stalest session evicted")
	}
}
