package lifecycle

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

const (
	MinUrgency = 1
	MaxUrgency = 5

	defaultHelpType = "Other"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

// now is an alias of `time.Now` so tests are able to freeze the clock.
// Do not run tests which replace it in parallel.
var now = time.Now

// timestamp returns the current time in the precision every store keeps
func timestamp() time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// Actor is the identity and role a call is made on behalf of
type Actor struct {
	ID   string
	Role schema.Role
}

// Filter narrows ListAll. Empty fields match everything.
type Filter struct {
	RequesterID string
	Statuses    []schema.HelpStatus
	Types       []string
}

// Lifecycle is the set of operations the help request dashboards rely on
type Lifecycle interface {
	Ping() error

	Create(requesterID, helpType, description, location string, urgency int) (*schema.HelpRequest, error)
	Get(helpID string) (*schema.HelpRequest, error)
	ListForRequester(requesterID string) ([]schema.HelpRequest, error)
	ListAll(filter Filter) ([]schema.HelpRequest, error)
	Transition(helpID string, target schema.HelpStatus, actor Actor) (*schema.HelpRequest, error)
	History(helpID string) ([]schema.HelpTransition, error)

	AggregateByLocation() (map[string]float64, error)
	AggregateByType() (map[string]float64, error)
	Summary() (*Summary, error)
}

// Manager owns the lifecycle of help requests on top of a HelpStore
type Manager struct {
	store store.HelpStore

	clockLock sync.Mutex
	lastStamp time.Time
}

func NewManager(s store.HelpStore) *Manager {
	return &Manager{
		store: s,
	}
}

// stamp returns the time of a write. Stamps handed out by a manager are
// strictly increasing and never earlier than notBefore, so records written
// within one millisecond still order by creation.
func (m *Manager) stamp(notBefore time.Time) time.Time {
	m.clockLock.Lock()
	defer m.clockLock.Unlock()

	t := timestamp()
	if !t.After(m.lastStamp) {
		t = m.lastStamp.Add(time.Millisecond)
	}
	if t.Before(notBefore) {
		t = notBefore
	}

	m.lastStamp = t
	return t
}

// Ping checks the health of the underlying store
func (m *Manager) Ping() error {
	return m.store.Ping()
}

// Create files a new pending help request
func (m *Manager) Create(requesterID, helpType, description, location string, urgency int) (*schema.HelpRequest, error) {
	requesterID = strings.TrimSpace(requesterID)
	helpType = strings.TrimSpace(helpType)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	switch {
	case requesterID == "":
		return nil, fmt.Errorf("%w: requester is required", ErrValidation)
	case description == "":
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	case location == "":
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	case urgency < MinUrgency || urgency > MaxUrgency:
		return nil, fmt.Errorf("%w: urgency %d is out of range [%d, %d]", ErrValidation, urgency, MinUrgency, MaxUrgency)
	}

	if helpType == "" {
		helpType = defaultHelpType
	}

	createdAt := m.stamp(time.Time{})
	help := &schema.HelpRequest{
		ID:            uuid.New().String(),
		RequesterID:   requesterID,
		Type:          helpType,
		Description:   description,
		Location:      location,
		Urgency:       urgency,
		Status:        schema.HelpPending,
		SchemaVersion: schema.HelpSchemaVersion,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if err := m.store.CreateHelp(help); err != nil {
		return nil, err
	}

	log.WithField("help_id", help.ID).
		WithField("urgency", help.Urgency).
		Info("help request created")

	return help, nil
}

// Get returns a single help request
func (m *Manager) Get(helpID string) (*schema.HelpRequest, error) {
	help, err := m.store.GetHelp(helpID)
	if err != nil {
		if err == store.ErrRequestNotExist {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, helpID)
		}
		return nil, err
	}
	return help, nil
}

// ListForRequester returns the requests filed by a requester, latest first
func (m *Manager) ListForRequester(requesterID string) ([]schema.HelpRequest, error) {
	helps, err := m.store.ListHelps(store.HelpFilter{RequesterID: requesterID})
	if err != nil {
		return nil, err
	}
	return latestFirst(helps), nil
}

// ListAll returns every request matching the filter, latest first
func (m *Manager) ListAll(filter Filter) ([]schema.HelpRequest, error) {
	helps, err := m.store.ListHelps(store.HelpFilter{
		RequesterID: filter.RequesterID,
		Statuses:    filter.Statuses,
		Types:       filter.Types,
	})
	if err != nil {
		return nil, err
	}
	return latestFirst(helps), nil
}

// Transition moves a help request to the target status on behalf of the
// actor. The store write is conditional on the status the permission check
// was made against, so of two racing calls at most one is applied.
func (m *Manager) Transition(helpID string, target schema.HelpStatus, actor Actor) (*schema.HelpRequest, error) {
	if !actor.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidTransition, actor.Role)
	}

	help, err := m.Get(helpID)
	if err != nil {
		return nil, err
	}

	// requesters never learn about the requests of others
	if !CanViewAll(actor.Role) && actor.ID != help.RequesterID {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, helpID)
	}

	if !CanTransition(help.Status, target, actor.Role) {
		return nil, fmt.Errorf("%w: %s may not move a request from %s to %s",
			ErrInvalidTransition, actor.Role, help.Status, target)
	}

	at := m.stamp(help.UpdatedAt)

	t := &schema.HelpTransition{
		ID:        uuid.New().String(),
		HelpID:    help.ID,
		From:      help.Status,
		To:        target,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		CreatedAt: at,
	}

	updated, err := m.store.UpdateHelpStatus(t)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, helpID)
		case store.ErrStatusMismatch:
			current := "unknown"
			if h, err := m.store.GetHelp(helpID); err == nil {
				current = string(h.Status)
			}
			return nil, fmt.Errorf("%w: request %s is now %s", ErrConcurrentConflict, helpID, current)
		default:
			return nil, err
		}
	}

	log.WithField("help_id", helpID).
		WithField("from", t.From).
		WithField("to", t.To).
		WithField("role", actor.Role).
		Info("help request transitioned")

	return updated, nil
}

// History returns the audit trail of a request, oldest first
func (m *Manager) History(helpID string) ([]schema.HelpTransition, error) {
	if _, err := m.Get(helpID); err != nil {
		return nil, err
	}
	return m.store.ListHelpTransitions(helpID)
}

// latestFirst orders requests by creation time descending. Requests created
// at the same instant keep their insertion order.
func latestFirst(helps []schema.HelpRequest) []schema.HelpRequest {
	sort.SliceStable(helps, func(i, j int) bool {
		return helps[i].CreatedAt.After(helps[j].CreatedAt)
	})
	return helps
}
