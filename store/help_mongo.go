package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/relief-api/schema"
)

// nextSequence increases and returns the counter of a collection
func (m *mongoDB) nextSequence(ctx context.Context, collection string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	if err := m.client.Database(m.database).Collection(schema.CounterCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter); err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// CreateHelp inserts a help request with the next insertion sequence
func (m *mongoDB) CreateHelp(help *schema.HelpRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	seq, err := m.nextSequence(ctx, schema.HelpRequestCollection)
	if err != nil {
		return err
	}
	help.Seq = seq

	_, err = m.client.Database(m.database).Collection(schema.HelpRequestCollection).InsertOne(ctx, help)
	return err
}

// GetHelp returns a help request by its id
func (m *mongoDB) GetHelp(helpID string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var help schema.HelpRequest
	if err := m.client.Database(m.database).Collection(schema.HelpRequestCollection).
		FindOne(ctx, bson.M{"_id": helpID}).Decode(&help); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &help, nil
}

// ListHelps returns help requests matching the filter in insertion order
func (m *mongoDB) ListHelps(filter HelpFilter) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.RequesterID != "" {
		query["requester_id"] = filter.RequesterID
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": statusStrings(filter.Statuses)}
	}
	if len(filter.Types) > 0 {
		query["type"] = bson.M{"$in": filter.Types}
	}

	cursor, err := m.client.Database(m.database).Collection(schema.HelpRequestCollection).
		Find(ctx, query, options.Find().SetSort(bson.M{"seq": 1}))
	if err != nil {
		return nil, err
	}

	helps := []schema.HelpRequest{}
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, err
	}

	return helps, nil
}

// UpdateHelpStatus sets the new status only if the stored status still
// equals `t.From`, then appends the audit entry. When the audit entry can
// not be written the status change is reverted, so a failed call leaves the
// request as it was.
func (m *mongoDB) UpdateHelpStatus(t *schema.HelpTransition) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database)

	seq, err := m.nextSequence(ctx, schema.HelpTransitionCollection)
	if err != nil {
		return nil, err
	}
	t.Seq = seq

	var before schema.HelpRequest
	err = c.Collection(schema.HelpRequestCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": t.HelpID, "status": t.From},
		bson.M{"$set": bson.M{
			"status":     t.To,
			"updated_at": t.CreatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
		if _, err := m.GetHelp(t.HelpID); err != nil {
			return nil, err
		}
		return nil, ErrStatusMismatch
	}

	if _, err := c.Collection(schema.HelpTransitionCollection).InsertOne(ctx, t); err != nil {
		m.revertHelpStatus(ctx, t, before.UpdatedAt)
		return nil, err
	}

	help := before
	help.Status = t.To
	help.UpdatedAt = t.CreatedAt
	return &help, nil
}

// revertHelpStatus undoes the status change of t unless the request has
// been moved again since
func (m *mongoDB) revertHelpStatus(ctx context.Context, t *schema.HelpTransition, updatedAt time.Time) {
	l := log.WithField("prefix", mongoLogPrefix).WithField("help_id", t.HelpID)

	result, err := m.client.Database(m.database).Collection(schema.HelpRequestCollection).UpdateOne(ctx,
		bson.M{"_id": t.HelpID, "status": t.To, "updated_at": t.CreatedAt},
		bson.M{"$set": bson.M{
			"status":     t.From,
			"updated_at": updatedAt,
		}},
	)
	if err != nil {
		l.WithError(err).Error("fail to revert status without audit entry")
		return
	}
	if result.ModifiedCount == 0 {
		l.Error("status without audit entry has been changed by others")
		return
	}
	l.Warn("status change reverted for the missing audit entry")
}

// ListHelpTransitions returns the audit trail of a request, oldest first
func (m *mongoDB) ListHelpTransitions(helpID string) ([]schema.HelpTransition, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.client.Database(m.database).Collection(schema.HelpTransitionCollection).
		Find(ctx, bson.M{"help_id": helpID}, options.Find().SetSort(bson.M{"seq": 1}))
	if err != nil {
		return nil, err
	}

	transitions := []schema.HelpTransition{}
	if err := cursor.All(ctx, &transitions); err != nil {
		return nil, err
	}

	return transitions, nil
}
