package realtime

import (
	"sort"
	"sync"
)

// Presence counts open connections per user
type Presence struct {
	mu    sync.Mutex
	conns map[string]int
}

func NewPresence() *Presence {
	return &Presence{conns: make(map[string]int)}
}

// Add registers connection of user and reports whether it is the first one
func (p *Presence) Add(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.conns[userID]++
	return p.conns[userID] == 1
}

// Remove unregisters connection of user and reports whether it was the last one.
// Removing a user without connections is a no-op.
func (p *Presence) Remove(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, ok := p.conns[userID]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(p.conns, userID)
		return true
	}
	p.conns[userID] = n - 1
	return false
}

// Online returns sorted ids of users having at least one connection
func (p *Presence) Online() []string {
	p.mu.Lock()
	ids := make([]string, 0, len(p.conns))
	for id := range p.conns {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	sort.Strings(ids)
	return ids
}
