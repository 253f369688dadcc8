// Package cart holds per-visitor carts in memory. Carts are never persisted
// and never submitted anywhere; a visitor shows the waiter summary at the
// table.
package cart

import (
	"sync"
	"time"

	"restaurant-site/models"

	"github.com/google/uuid"
)

// Item is a menu item snapshot plus a quantity of at least 1.
type Item struct {
	models.MenuItem
	Quantity int `json:"quantity"`
}

// Cart keeps entries in insertion order, one entry per menu item id.
type Cart struct {
	items []Item
}

// Add puts one of item in the cart, incrementing the quantity when it is
// already there.
func (c *Cart) Add(item models.MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{MenuItem: item, Quantity: 1})
}

// UpdateQuantity shifts the quantity by delta and never drops it below 1.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
			return
		}
	}
}

func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.items = nil }

// Items returns a copy of the entries.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price × quantity.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the sum of quantities.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Len is the number of distinct entries.
func (c *Cart) Len() int { return len(c.items) }

// SummaryLine is one row of the waiter summary.
type SummaryLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Summary is the list a visitor shows the waiter.
type Summary struct {
	Lines    []SummaryLine `json:"lines"`
	Distinct int           `json:"distinct"`
	Count    int           `json:"count"`
	Total    float64       `json:"total"`
}

func (c *Cart) WaiterSummary() Summary {
	lines := make([]SummaryLine, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, SummaryLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			LineTotal: it.Price * float64(it.Quantity),
		})
	}
	return Summary{Lines: lines, Distinct: c.Len(), Count: c.Count(), Total: c.Total()}
}

// ── Sessions ─────────────────────────────────────────────────────────────────

type session struct {
	cart     Cart
	lastSeen time.Time
}

// Sessions maps session ids to carts.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
	now      func() time.Time
}

func NewSessions(idle time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		idle:     idle,
		now:      time.Now,
	}
}

// NewID returns a fresh session id.
func NewID() string { return uuid.NewString() }

// With runs fn against the cart for id, creating it when missing. fn must
// not retain the cart.
func (s *Sessions) With(id string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	fn(&sess.cart)
}

// Sweep drops sessions idle for longer than the configured duration and
// returns how many were dropped.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idle)
	dropped := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
