package store

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/relief-api/schema"
)

// MemoryStore keeps help requests in process memory. Records are kept in
// insertion order and copied on every read, so callers never share state
// with the store.
type MemoryStore struct {
	sync.RWMutex

	seq           int64
	transitionSeq int64
	helps         []*schema.HelpRequest
	index         map[string]*schema.HelpRequest
	transitions   map[string][]schema.HelpTransition
	transitionIDs map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		helps:         make([]*schema.HelpRequest, 0),
		index:         make(map[string]*schema.HelpRequest),
		transitions:   make(map[string][]schema.HelpTransition),
		transitionIDs: make(map[string]struct{}),
	}
}

func (s *MemoryStore) Ping() error {
	return nil
}

func (s *MemoryStore) Close() {}

func (s *MemoryStore) CreateHelp(help *schema.HelpRequest) error {
	s.Lock()
	defer s.Unlock()

	s.seq++
	help.Seq = s.seq

	h := *help
	s.helps = append(s.helps, &h)
	s.index[h.ID] = &h
	return nil
}

func (s *MemoryStore) GetHelp(helpID string) (*schema.HelpRequest, error) {
	s.RLock()
	defer s.RUnlock()

	h, ok := s.index[helpID]
	if !ok {
		return nil, ErrRequestNotExist
	}

	help := *h
	return &help, nil
}

func (s *MemoryStore) ListHelps(filter HelpFilter) ([]schema.HelpRequest, error) {
	s.RLock()
	defer s.RUnlock()

	helps := []schema.HelpRequest{}
	for _, h := range s.helps {
		if filter.match(h) {
			helps = append(helps, *h)
		}
	}

	return helps, nil
}

func (s *MemoryStore) UpdateHelpStatus(t *schema.HelpTransition) (*schema.HelpRequest, error) {
	s.Lock()
	defer s.Unlock()

	h, ok := s.index[t.HelpID]
	if !ok {
		return nil, ErrRequestNotExist
	}

	if h.Status != t.From {
		return nil, ErrStatusMismatch
	}

	// audit ids are unique as they are in the database backends
	if _, ok := s.transitionIDs[t.ID]; ok {
		return nil, fmt.Errorf("duplicate help transition id: %s", t.ID)
	}

	s.transitionSeq++
	t.Seq = s.transitionSeq
	s.transitionIDs[t.ID] = struct{}{}

	h.Status = t.To
	h.UpdatedAt = t.CreatedAt
	s.transitions[t.HelpID] = append(s.transitions[t.HelpID], *t)

	help := *h
	return &help, nil
}

func (s *MemoryStore) ListHelpTransitions(helpID string) ([]schema.HelpTransition, error) {
	s.RLock()
	defer s.RUnlock()

	transitions := make([]schema.HelpTransition, len(s.transitions[helpID]))
	copy(transitions, s.transitions[helpID])
	return transitions, nil
}
