package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/relief-api/schema"
)

// HelpStoreTestSuite runs the same checks against every HelpStore backend
type HelpStoreTestSuite struct {
	suite.Suite
	setup    func() (HelpStore, error)
	teardown func()
	store    HelpStore
}

func (s *HelpStoreTestSuite) SetupTest() {
	store, err := s.setup()
	if err != nil {
		s.T().Fatal(err)
	}
	s.store = store
}

func (s *HelpStoreTestSuite) TearDownSuite() {
	if s.teardown != nil {
		s.teardown()
	}
}

func newTestHelp(requesterID, helpType string, urgency int) *schema.HelpRequest {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &schema.HelpRequest{
		ID:            uuid.New().String(),
		RequesterID:   requesterID,
		Type:          helpType,
		Description:   "need help",
		Location:      "Central Park",
		Urgency:       urgency,
		Status:        schema.HelpPending,
		SchemaVersion: schema.HelpSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newTestTransition(helpID string, from, to schema.HelpStatus) *schema.HelpTransition {
	return &schema.HelpTransition{
		ID:        uuid.New().String(),
		HelpID:    helpID,
		From:      from,
		To:        to,
		ActorID:   "provider-1",
		ActorRole: schema.RoleReliefProvider,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *HelpStoreTestSuite) TestCreateAndGetHelp() {
	help := newTestHelp("alice", "Food", 3)
	s.NoError(s.store.CreateHelp(help))
	s.NotZero(help.Seq)

	stored, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.Equal(help.ID, stored.ID)
	s.Equal("alice", stored.RequesterID)
	s.Equal(schema.HelpPending, stored.Status)
	s.Equal(3, stored.Urgency)
	s.True(help.CreatedAt.Equal(stored.CreatedAt))
	s.True(stored.CreatedAt.Equal(stored.UpdatedAt))
}

func (s *HelpStoreTestSuite) TestGetUnknownHelp() {
	_, err := s.store.GetHelp(uuid.New().String())
	s.Equal(ErrRequestNotExist, err)

	_, err = s.store.GetHelp("not-a-uuid")
	s.Equal(ErrRequestNotExist, err)
}

func (s *HelpStoreTestSuite) TestListHelpsInInsertionOrder() {
	requester := uuid.New().String()
	first := newTestHelp(requester, "Food", 2)
	second := newTestHelp(requester, "Shelter", 4)
	third := newTestHelp(uuid.New().String(), "Food", 5)

	s.NoError(s.store.CreateHelp(first))
	s.NoError(s.store.CreateHelp(second))
	s.NoError(s.store.CreateHelp(third))

	helps, err := s.store.ListHelps(HelpFilter{RequesterID: requester})
	s.NoError(err)
	s.Len(helps, 2)
	s.Equal(first.ID, helps[0].ID)
	s.Equal(second.ID, helps[1].ID)
	s.True(helps[0].Seq < helps[1].Seq)

	helps, err = s.store.ListHelps(HelpFilter{RequesterID: uuid.New().String()})
	s.NoError(err)
	s.NotNil(helps)
	s.Len(helps, 0)
}

func (s *HelpStoreTestSuite) TestListHelpsByStatusAndType() {
	requester := uuid.New().String()
	food := newTestHelp(requester, "Food", 2)
	shelter := newTestHelp(requester, "Shelter", 4)
	s.NoError(s.store.CreateHelp(food))
	s.NoError(s.store.CreateHelp(shelter))

	_, err := s.store.UpdateHelpStatus(newTestTransition(shelter.ID, schema.HelpPending, schema.HelpInProgress))
	s.NoError(err)

	helps, err := s.store.ListHelps(HelpFilter{
		RequesterID: requester,
		Statuses:    []schema.HelpStatus{schema.HelpInProgress},
	})
	s.NoError(err)
	s.Len(helps, 1)
	s.Equal(shelter.ID, helps[0].ID)

	helps, err = s.store.ListHelps(HelpFilter{
		RequesterID: requester,
		Types:       []string{"Food", "Medical"},
	})
	s.NoError(err)
	s.Len(helps, 1)
	s.Equal(food.ID, helps[0].ID)

	helps, err = s.store.ListHelps(HelpFilter{
		RequesterID: requester,
		Statuses:    []schema.HelpStatus{schema.HelpPending, schema.HelpInProgress},
		Types:       []string{"Shelter"},
	})
	s.NoError(err)
	s.Len(helps, 1)
	s.Equal(shelter.ID, helps[0].ID)
}

func (s *HelpStoreTestSuite) TestUpdateHelpStatus() {
	help := newTestHelp(uuid.New().String(), "Medical", 5)
	s.NoError(s.store.CreateHelp(help))

	t := newTestTransition(help.ID, schema.HelpPending, schema.HelpInProgress)
	updated, err := s.store.UpdateHelpStatus(t)
	s.NoError(err)
	s.Equal(schema.HelpInProgress, updated.Status)
	s.True(t.CreatedAt.Equal(updated.UpdatedAt))
	s.True(help.CreatedAt.Equal(updated.CreatedAt))

	transitions, err := s.store.ListHelpTransitions(help.ID)
	s.NoError(err)
	s.Len(transitions, 1)
	s.Equal(schema.HelpPending, transitions[0].From)
	s.Equal(schema.HelpInProgress, transitions[0].To)
	s.Equal(schema.RoleReliefProvider, transitions[0].ActorRole)
}

func (s *HelpStoreTestSuite) TestUpdateHelpStatusMismatch() {
	help := newTestHelp(uuid.New().String(), "Medical", 5)
	s.NoError(s.store.CreateHelp(help))

	_, err := s.store.UpdateHelpStatus(newTestTransition(help.ID, schema.HelpInProgress, schema.HelpResolved))
	s.Equal(ErrStatusMismatch, err)

	stored, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.Equal(schema.HelpPending, stored.Status)
	s.True(help.UpdatedAt.Equal(stored.UpdatedAt))

	transitions, err := s.store.ListHelpTransitions(help.ID)
	s.NoError(err)
	s.Len(transitions, 0)
}

func (s *HelpStoreTestSuite) TestUpdateHelpStatusAuditFailure() {
	other := newTestHelp(uuid.New().String(), "Food", 2)
	help := newTestHelp(uuid.New().String(), "Medical", 5)
	s.NoError(s.store.CreateHelp(other))
	s.NoError(s.store.CreateHelp(help))

	recorded := newTestTransition(other.ID, schema.HelpPending, schema.HelpInProgress)
	_, err := s.store.UpdateHelpStatus(recorded)
	s.NoError(err)

	// an audit entry with a taken id can not be written
	t := newTestTransition(help.ID, schema.HelpPending, schema.HelpInProgress)
	t.ID = recorded.ID
	_, err = s.store.UpdateHelpStatus(t)
	s.Error(err)

	stored, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.Equal(schema.HelpPending, stored.Status)
	s.True(help.UpdatedAt.Equal(stored.UpdatedAt))

	transitions, err := s.store.ListHelpTransitions(help.ID)
	s.NoError(err)
	s.Len(transitions, 0)

	// the request is still able to move on
	updated, err := s.store.UpdateHelpStatus(newTestTransition(help.ID, schema.HelpPending, schema.HelpInProgress))
	s.NoError(err)
	s.Equal(schema.HelpInProgress, updated.Status)
}

func (s *HelpStoreTestSuite) TestListHelpTransitionsWithinOneInstant() {
	help := newTestHelp(uuid.New().String(), "Shelter", 4)
	s.NoError(s.store.CreateHelp(help))

	at := time.Now().UTC().Truncate(time.Millisecond)
	steps := [][2]schema.HelpStatus{
		{schema.HelpPending, schema.HelpInProgress},
		{schema.HelpInProgress, schema.HelpResolved},
	}
	for _, step := range steps {
		t := newTestTransition(help.ID, step[0], step[1])
		t.CreatedAt = at
		_, err := s.store.UpdateHelpStatus(t)
		s.NoError(err)
		s.NotZero(t.Seq)
	}

	transitions, err := s.store.ListHelpTransitions(help.ID)
	s.NoError(err)
	s.Len(transitions, 2)
	s.Equal(schema.HelpInProgress, transitions[0].To)
	s.Equal(schema.HelpResolved, transitions[1].To)
	s.True(transitions[0].Seq < transitions[1].Seq)
}

func (s *HelpStoreTestSuite) TestUpdateUnknownHelpStatus() {
	_, err := s.store.UpdateHelpStatus(newTestTransition(uuid.New().String(), schema.HelpPending, schema.HelpCancelled))
	s.Equal(ErrRequestNotExist, err)
}

func (s *HelpStoreTestSuite) TestConcurrentUpdateHelpStatus() {
	help := newTestHelp(uuid.New().String(), "Evacuation", 4)
	s.NoError(s.store.CreateHelp(help))

	targets := []schema.HelpStatus{schema.HelpInProgress, schema.HelpCancelled}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target schema.HelpStatus) {
			defer wg.Done()
			_, errs[i] = s.store.UpdateHelpStatus(newTestTransition(help.ID, schema.HelpPending, target))
		}(i, target)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.Equal(ErrStatusMismatch, err)
		}
	}
	s.Equal(1, succeeded)

	transitions, err := s.store.ListHelpTransitions(help.ID)
	s.NoError(err)
	s.Len(transitions, 1)
}

func TestMemoryHelpStore(t *testing.T) {
	suite.Run(t, &HelpStoreTestSuite{
		setup: func() (HelpStore, error) {
			return NewMemoryStore(), nil
		},
	})
}

func TestORMHelpStore(t *testing.T) {
	conn := os.Getenv("RELIEF_TEST_ORM_CONN")
	if conn == "" {
		t.Skip("RELIEF_TEST_ORM_CONN is not set")
	}

	db, err := gorm.Open("postgres", conn)
	if err != nil {
		t.Fatal(err)
	}

	suite.Run(t, &HelpStoreTestSuite{
		setup: func() (HelpStore, error) {
			if err := db.DropTableIfExists(&schema.HelpTransition{}, &schema.HelpRequest{}).Error; err != nil {
				return nil, err
			}
			if err := db.AutoMigrate(&schema.HelpRequest{}, &schema.HelpTransition{}).Error; err != nil {
				return nil, err
			}
			return NewORMStore(db), nil
		},
		teardown: func() {
			db.Close()
		},
	})
}

func TestMongoHelpStore(t *testing.T) {
	conn := os.Getenv("RELIEF_TEST_MONGO_CONN")
	if conn == "" {
		t.Skip("RELIEF_TEST_MONGO_CONN is not set")
	}
	dbName := "relief-test-db"

	mongoClient, err := mongo.NewClient(options.Client().ApplyURI(conn))
	if err != nil {
		t.Fatalf("create mongo client with error: %s", err)
	}
	if err := mongoClient.Connect(context.Background()); err != nil {
		t.Fatalf("connect mongo database with error: %s", err)
	}

	suite.Run(t, &HelpStoreTestSuite{
		setup: func() (HelpStore, error) {
			// make sure every test is run with a clean environment
			if err := mongoClient.Database(dbName).Drop(context.Background()); err != nil {
				return nil, err
			}
			schema.NewMongoDBIndexer(conn, dbName).IndexAll()
			return NewMongoStore(mongoClient, dbName), nil
		},
		teardown: func() {
			_ = mongoClient.Disconnect(context.Background())
		},
	})
}
