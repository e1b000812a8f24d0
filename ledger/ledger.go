package ledger

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCapacityExceeded = errors.New("event capacity exceeded")
)

// EventLedger owns the attendees counter on event documents. Reserve and
// Release are the only writers of that counter, so capacity checks stay
// accurate under concurrent bookings.
type EventLedger struct {
	events *mongo.Collection
}

func NewEventLedger(events *mongo.Collection) *EventLedger {
	return &EventLedger{events: events}
}

// Reserve raises the event's attendee count by count, but only if the
// result stays within capacity. The check and the increment are a single
// conditional update, so two concurrent reservations can never jointly
// overshoot the capacity.
func (l *EventLedger) Reserve(ctx context.Context, eventID primitive.ObjectID, count int) error {
	res, err := l.events.UpdateOne(ctx, reserveFilter(eventID, count), reserveUpdate(count))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the event is gone or the increment would overshoot.
		n, err := l.events.CountDocuments(ctx, bson.M{"_id": eventID})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrEventNotFound
		}
		return ErrCapacityExceeded
	}
	return nil
}

// Release lowers the event's attendee count by count, floored at zero.
func (l *EventLedger) Release(ctx context.Context, eventID primitive.ObjectID, count int) error {
	res, err := l.events.UpdateOne(ctx, bson.M{"_id": eventID}, releaseUpdate(count))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

func reserveFilter(eventID primitive.ObjectID, count int) bson.M {
	return bson.M{
		"_id": eventID,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$attendees", count}},
				"$capacity",
			},
		},
	}
}

func reserveUpdate(count int) bson.M {
	return bson.M{
		"$inc": bson.M{"attendees": count},
		"$set": bson.M{"updatedAt": time.Now()},
	}
}

func releaseUpdate(count int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"attendees": bson.M{
				"$max": bson.A{0, bson.M{"$subtract": bson.A{"$attendees", count}}},
			},
			"updatedAt": "$$NOW",
		}}},
	}
}
