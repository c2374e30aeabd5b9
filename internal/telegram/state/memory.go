package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/Remphph/Track-bot/internal/logger"
	tghelpers "github.com/Remphph/Track-bot/internal/telegram/helpers"
)

type entry struct {
	session *Session
	touched time.Time
}

// MemoryManager is the in-memory Manager implementation. Sessions older than
// the TTL are treated as gone: expired entries are dropped lazily on access
// and swept by the janitor started with Run.
type MemoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*entry
	ttl      time.Duration

	handlersMu sync.RWMutex
	handlers   map[State]tele.HandlerFunc

	now func() time.Time
}

// NewMemoryManager constructs a MemoryManager. A non-positive ttl disables
// expiry.
func NewMemoryManager(ttl time.Duration) *MemoryManager {
	return &MemoryManager{
		sessions: make(map[int64]*entry),
		handlers: make(map[State]tele.HandlerFunc),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Run sweeps expired sessions until the context is done.
func (m *MemoryManager) Run(ctx context.Context, every time.Duration) {
	if m.ttl <= 0 {
		return
	}
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *MemoryManager) sweep() {
	now := m.now()
	m.mu.Lock()
	evicted := 0
	for id, e := range m.sessions {
		if now.Sub(e.touched) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	m.mu.Unlock()
	if evicted > 0 {
		logger.Debug(logger.Background(), "tg", "fsm.evict",
			slog.Int("count", evicted),
		)
	}
}

func (m *MemoryManager) expired(e *entry) bool {
	return m.ttl > 0 && m.now().Sub(e.touched) > m.ttl
}

// live returns the entry for a user, dropping it first when expired.
// Callers must hold the write lock.
func (m *MemoryManager) live(userID int64) (*entry, bool) {
	e, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	if m.expired(e) {
		delete(m.sessions, userID)
		return nil, false
	}
	return e, true
}

func (m *MemoryManager) ensure(userID int64) *entry {
	e, ok := m.live(userID)
	if !ok {
		e = &entry{session: &Session{State: StateIdle, TempData: make(map[string]interface{})}}
		m.sessions[userID] = e
	}
	e.touched = m.now()
	return e
}

// Get returns the session for a user if it exists, otherwise a default idle session.
func (m *MemoryManager) Get(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.live(userID); ok {
		return e.session
	}
	return &Session{State: StateIdle, TempData: make(map[string]interface{})}
}

// SetTemp stores a temporary key/value pair for the given user session.
func (m *MemoryManager) SetTemp(userID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(userID).session.TempData[key] = value
}

// GetTemp retrieves a temporary value by key for the given user session.
func (m *MemoryManager) GetTemp(userID int64, key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(userID)
	if !ok {
		return nil, false
	}
	val, ok := e.session.TempData[key]
	return val, ok
}

// GetTempString retrieves a temporary value by key and asserts it as string.
func (m *MemoryManager) GetTempString(userID int64, key string) (string, bool) {
	val, found := m.GetTemp(userID, key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetTempInt64 retrieves a temporary value by key and asserts it as int64.
func (m *MemoryManager) GetTempInt64(userID int64, key string) (int64, bool) {
	val, found := m.GetTemp(userID, key)
	if !found {
		return 0, false
	}
	v, ok := val.(int64)
	return v, ok
}

// Clear removes the entire session for a user.
func (m *MemoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// SetState sets the FSM state for the given user.
func (m *MemoryManager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(userID).session.State = st
}

// GetState returns the current FSM state of a user, or StateIdle if none exists.
func (m *MemoryManager) GetState(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.live(userID); ok {
		return e.session.State
	}
	return StateIdle
}

// HasState checks if a user has an active state other than idle.
func (m *MemoryManager) HasState(userID int64) bool {
	return m.GetState(userID) != StateIdle
}

// InProgress reports whether the user currently has an active FSM state.
func (m *MemoryManager) InProgress(userID int64) bool {
	return m.HasState(userID)
}

// RegisterHandler associates a state with its handler.
func (m *MemoryManager) RegisterHandler(st State, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	m.handlersMu.Lock()
	defer m.handlersMu.Unlock()
	m.handlers[st] = h
}

// ManagerHandler executes the handler function registered for the user's current state, if any.
func (m *MemoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.GetState(userID)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("state", string(current)),
	)

	m.handlersMu.RLock()
	handler, ok := m.handlers[current]
	m.handlersMu.RUnlock()
	if ok {
		return handler(c)
	}
	return nil
}
