package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hustlerkashish/G-block-society/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingStore persists bookings and answers the derived per-event
// rollups. Event and owner joins resolve against the events and users
// collections by name.
type BookingStore struct {
	bookings *mongo.Collection
}

func NewBookingStore(bookings *mongo.Collection) *BookingStore {
	return &BookingStore{bookings: bookings}
}

func (s *BookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if b.BookedAt.IsZero() {
		b.BookedAt = now
	}
	b.UpdatedAt = now

	_, err := s.bookings.InsertOne(ctx, b)
	return err
}

func (s *BookingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var b models.Booking
	err := s.bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindPopulated returns one booking joined with its event and owner fields.
func (s *BookingStore) FindPopulated(ctx context.Context, id primitive.ObjectID) (*models.PopulatedBooking, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}, populateStages()...)

	results, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrBookingNotFound
	}
	return &results[0], nil
}

// ListByUser returns a user's bookings, newest first, events populated.
func (s *BookingStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.PopulatedBooking, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.M{"bookedAt": -1}}},
	}, populateStages()...)

	return s.aggregate(ctx, pipeline)
}

// List returns a page of all bookings with the total count, newest first.
func (s *BookingStore) List(ctx context.Context, skip, limit int) ([]models.PopulatedBooking, int64, error) {
	total, err := s.bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"bookedAt": -1}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}, populateStages()...)

	results, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// UpdateStatus transitions a booking's status and returns the populated result.
func (s *BookingStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.PopulatedBooking, error) {
	res, err := s.bookings.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrBookingNotFound
	}
	return s.FindPopulated(ctx, id)
}

func (s *BookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// EventStats computes the live rollup for one event: total attendees and
// revenue across its bookings plus the number of distinct participating
// houses. Always derived from the bookings collection, never cached.
func (s *BookingStore) EventStats(ctx context.Context, eventID primitive.ObjectID) (*models.EventStats, error) {
	cursor, err := s.bookings.Aggregate(ctx, eventStatsPipeline(eventID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.EventStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.EventStats{}, nil
	}
	return &results[0], nil
}

func (s *BookingStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.PopulatedBooking, error) {
	cursor, err := s.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.PopulatedBooking
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// populateStages joins the event and owner display fields onto each
// booking. Bookings whose event was deleted keep a nil event.
func populateStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "events",
			"localField":   "eventId",
			"foreignField": "_id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$event", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"user.password": 0}}},
	}
}

func eventStatsPipeline(eventID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"eventId": eventID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$owner", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalAttendees": bson.M{"$sum": "$attendees"},
			"totalRevenue":   bson.M{"$sum": "$amount"},
			"totalBookings":  bson.M{"$sum": 1},
			"houses":         bson.M{"$addToSet": "$owner.homeNumber"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"totalAttendees": 1,
			"totalRevenue":   1,
			"totalBookings":  1,
			"uniqueHouses":   bson.M{"$size": "$houses"},
		}}},
	}
}
