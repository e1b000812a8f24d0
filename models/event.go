package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string             `bson:"time" json:"time"`
	Location    string             `bson:"location" json:"location"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Attendees   int                `bson:"attendees" json:"attendees"`
	Status      string             `bson:"status" json:"status"` // upcoming, ongoing, completed
	IsPaid      bool               `bson:"isPaid" json:"isPaid"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EventWithCreator is an Event joined with the username of the admin
// who created it, for list/detail responses.
type EventWithCreator struct {
	Event             `bson:",inline"`
	CreatedByUsername string `bson:"createdByUsername,omitempty" json:"createdByUsername,omitempty"`
}

// EventStats is the live per-event rollup derived from the bookings
// collection. Never persisted.
type EventStats struct {
	TotalAttendees int     `bson:"totalAttendees" json:"totalAttendees"`
	TotalRevenue   float64 `bson:"totalRevenue" json:"totalRevenue"`
	UniqueHouses   int     `bson:"uniqueHouses" json:"uniqueHouses"`
	TotalBookings  int     `bson:"totalBookings" json:"totalBookings"`
}
