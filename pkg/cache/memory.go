package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Memory is an in-process TTL+LRU response cache. Entries past their TTL are
// treated as absent even while still resident; capacity overflow evicts the
// least recently used entry.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]*list.Element
	order   *list.List // front = most recently used

	now func() time.Time // overridable in tests
}

type memoryEntry struct {
	fingerprint string
	reply       string
	storedAt    time.Time
}

// NewMemory creates a memory cache with the given TTL and capacity
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Memory{
		ttl:     ttl,
		max:     maxEntries,
		entries: make(map[string]*list.Element),
		order:   list.New(),
		now:     time.Now,
	}
}

// Get returns the cached reply if present and not expired
func (m *Memory) Get(_ context.Context, fingerprint string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[fingerprint]
	if !ok {
		return "", false
	}

	entry := el.Value.(*memoryEntry)
	if m.now().Sub(entry.storedAt) >= m.ttl {
		// expired, drop it now rather than waiting for eviction pressure
		m.order.Remove(el)
		delete(m.entries, fingerprint)
		return "", false
	}

	m.order.MoveToFront(el)
	return entry.reply, true
}

// Put inserts a reply, evicting the least recently used entry at capacity
func (m *Memory) Put(_ context.Context, fingerprint, reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[fingerprint]; ok {
		entry := el.Value.(*memoryEntry)
		entry.reply = reply
		entry.storedAt = m.now()
		m.order.MoveToFront(el)
		return
	}

	if len(m.entries) >= m.max {
		oldest := m.order.Back()
		if oldest != nil {
			m.order.Remove(oldest)
			delete(m.entries, oldest.Value.(*memoryEntry).fingerprint)
		}
	}

	el := m.order.PushFront(&memoryEntry{fingerprint: fingerprint, reply: reply, storedAt: m.now()})
	m.entries[fingerprint] = el
}

// Clear drops all entries
func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*list.Element)
	m.order.Init()
}

// Len returns the number of resident entries, expired or not
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
