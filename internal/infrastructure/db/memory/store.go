// Package memory provides an in-process implementation of the repository
// ports. It backs tests and the STORE=memory development mode; the mongo
// package is its production twin.
package memory

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// Store holds all records behind a single mutex. Every repository adapter
// locks the store across its whole operation, so check-and-insert sequences
// are atomic here by construction.
type Store struct {
	mu sync.RWMutex

	users       map[string]*domain.User
	pending     map[string]*domain.PendingUser
	credentials map[string]*domain.Credential

	children  map[string]*domain.Child
	donations map[string]*domain.Donation
	donors    map[string]*domain.Donor
	stock     map[string]*domain.StockItem
	families  map[string]*domain.Family
	events    map[string]*domain.ScheduleEvent
}

// NewStore returns an empty, isolated store. Tests construct one per case so
// no state leaks between them.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]*domain.User),
		pending:     make(map[string]*domain.PendingUser),
		credentials: make(map[string]*domain.Credential),
		children:    make(map[string]*domain.Child),
		donations:   make(map[string]*domain.Donation),
		donors:      make(map[string]*domain.Donor),
		stock:       make(map[string]*domain.StockItem),
		families:    make(map[string]*domain.Family),
		events:      make(map[string]*domain.ScheduleEvent),
	}
}

// newID returns a random 12-hex-char identifier.
func newID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%012x", time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("%x", b)
}
