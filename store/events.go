package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hustlerkashish/G-block-society/ledger"
	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/validations"
)

// EventStore persists events. The attendees counter is owned by the
// capacity ledger and is never written here.
type EventStore struct {
	events *mongo.Collection
}

func NewEventStore(events *mongo.Collection) *EventStore {
	return &EventStore{events: events}
}

func (s *EventStore) ListEvents(ctx context.Context) ([]models.EventWithCreator, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "creator",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"createdByUsername": bson.M{"$arrayElemAt": bson.A{"$creator.username", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"creator": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}}},
	}

	cursor, err := s.events.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.EventWithCreator
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) FindEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) InsertEvent(ctx context.Context, event *models.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := s.events.InsertOne(ctx, event)
	return err
}

// UpdateEvent applies the non-nil fields of req and returns the updated
// event. Attendees is deliberately not updatable through here.
func (s *EventStore) UpdateEvent(ctx context.Context, id primitive.ObjectID, req *validations.UpdateEventRequest) (*models.Event, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.Time != nil {
		set["time"] = *req.Time
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Capacity != nil {
		set["capacity"] = *req.Capacity
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.IsPaid != nil {
		set["isPaid"] = *req.IsPaid
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}

	var event models.Event
	err := s.events.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// DeleteEvent hard-deletes the event. Existing bookings keep their
// eventId reference and are surfaced with a nil event when listed.
func (s *EventStore) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ledger.ErrEventNotFound
	}
	return nil
}
