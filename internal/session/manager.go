// Package session holds the volatile per-(tenant, caller) conversation state.
// Everything here lives for the process's uptime only: a restart discards all
// sessions, which is a designed property of the relay, not a bug.
package session

import (
	"sync"

	"multi-tenant-bot-relay/internal/model"
)

// Manager owns the session histories and last-reply records for all
// (tenant, caller) pairs. All methods are safe for concurrent use.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string][]model.Turn
	lastReplies map[string]string
	keyLocks    map[string]*sync.Mutex
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions:    make(map[string][]model.Turn),
		lastReplies: make(map[string]string),
		keyLocks:    make(map[string]*sync.Mutex),
	}
}

func key(tenantID, userID string) string {
	return tenantID + ":" + userID
}

// Lock serializes turn processing for one (tenant, caller) pair and returns
// the unlock func. Two rapid deliveries for the same pair would otherwise
// interleave their history appends.
func (m *Manager) Lock(tenantID, userID string) func() {
	k := key(tenantID, userID)

	m.mu.Lock()
	l, ok := m.keyLocks[k]
	if !ok {
		l = &sync.Mutex{}
		m.keyLocks[k] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// History returns a copy of the pair's turn history, oldest first.
// An unknown pair yields an empty history: sessions are created lazily.
func (m *Manager) History(tenantID, userID string) []model.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.sessions[key(tenantID, userID)]
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the pair's history and truncates to
// model.MaxSessionTurns, dropping the oldest entries first.
func (m *Manager) Append(tenantID, userID string, turns ...model.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(tenantID, userID)
	history := append(m.sessions[k], turns...)
	if over := len(history) - model.MaxSessionTurns; over > 0 {
		history = history[over:]
	}
	m.sessions[k] = history
}

// Reset empties the pair's history. The session itself stays alive.
func (m *Manager) Reset(tenantID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key(tenantID, userID)] = nil
}

// SetLastReply records the most recent assistant reply for the pair.
func (m *Manager) SetLastReply(tenantID, userID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastReplies[key(tenantID, userID)] = text
}

// LastReply returns the most recent assistant reply for the pair, if any.
func (m *Manager) LastReply(tenantID, userID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.lastReplies[key(tenantID, userID)]
	return text, ok && text != ""
}
