// Package session keeps the uploaded and normalized data of one browser
// session in memory. Nothing is ever persisted; a session lives until it is
// deleted or the process stops.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

var ErrNotFound = errors.New("there is no session with the specified ID")

// Session is the working set derived from one pair of uploaded files.
// It is immutable after creation, so it can be read concurrently.
type Session struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Records     []ledger.Record
	Lookup      ledger.Lookup
	DroppedRows int // Dump rows dropped because their amount was not numeric
}

// Code pairs a GL code with its resolved description for the frontend's
// code selection checkboxes.
type Code struct {
	GLCode        string `json:"glCode" example:"4010"`
	GLDescription string `json:"glDescription" example:"Travel Recovery"`
}

// Categories returns the distinct mapped categories of the session's
// records, sorted. Uncategorized is not a real category and is excluded
// from the selection list.
func (s *Session) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)

	for _, record := range s.Records {
		if record.Category == ledger.Uncategorized {
			continue
		}
		if _, ok := seen[record.Category]; ok {
			continue
		}
		seen[record.Category] = struct{}{}
		categories = append(categories, record.Category)
	}

	slices.Sort(categories)
	return categories
}

// Codes returns the distinct GL codes of the session's records with their
// descriptions, sorted by code.
func (s *Session) Codes() []Code {
	seen := make(map[string]struct{})
	codes := make([]Code, 0)

	for _, record := range s.Records {
		if _, ok := seen[record.GLCode]; ok {
			continue
		}
		seen[record.GLCode] = struct{}{}
		codes = append(codes, Code{GLCode: record.GLCode, GLDescription: record.GLDescription})
	}

	slices.SortFunc(codes, func(a, b Code) int {
		return strings.Compare(a.GLCode, b.GLCode)
	})
	return codes
}

// Store is the in-memory session registry. Sessions themselves are
// immutable, the store only guards the map.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create registers a new session for a normalized dump and its lookup.
func (st *Store) Create(result ledger.Result, lookup ledger.Lookup) *Session {
	s := &Session{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Records:     result.Records,
		Lookup:      lookup,
		DroppedRows: result.DroppedRows,
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s

	return s
}

// Get returns the session with the given ID.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

// Delete removes a session. Deleting an unknown ID is an error so that the
// API can return a 404.
func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(st.sessions, id)
	return nil
}

// DeleteAll drops every session.
func (st *Store) DeleteAll() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions = make(map[uuid.UUID]*Session)
}

// Count returns the number of active sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
