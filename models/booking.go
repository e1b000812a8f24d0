package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Booking is one account's reservation against an event for some number
// of attendees. A user may hold multiple bookings for the same event.
type Booking struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	EventID             primitive.ObjectID `bson:"eventId" json:"eventId"`
	Attendees           int                `bson:"attendees" json:"attendees"`
	Status              string             `bson:"status" json:"status"` // pending, confirmed, cancelled
	SpecialRequirements string             `bson:"specialRequirements,omitempty" json:"specialRequirements,omitempty"`
	Amount              float64            `bson:"amount" json:"amount"`
	PaymentStatus       string             `bson:"paymentStatus" json:"paymentStatus"` // pending, completed, failed
	PaymentMethod       string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentReference    string             `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	BookedAt            time.Time          `bson:"bookedAt" json:"bookedAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingEvent carries the event display fields joined onto a booking.
type BookingEvent struct {
	Title     string  `bson:"title" json:"title"`
	Date      string  `bson:"date" json:"date"`
	Time      string  `bson:"time" json:"time"`
	Location  string  `bson:"location" json:"location"`
	Capacity  int     `bson:"capacity" json:"capacity"`
	Attendees int     `bson:"attendees" json:"attendees"`
	IsPaid    bool    `bson:"isPaid" json:"isPaid"`
	Price     float64 `bson:"price" json:"price"`
}

// BookingOwner carries the owning account's display fields.
type BookingOwner struct {
	Username   string `bson:"username" json:"username"`
	HomeNumber string `bson:"homeNumber" json:"homeNumber"`
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
}

// PopulatedBooking is a Booking joined with its event and owner fields
// for confirmation and listing responses.
type PopulatedBooking struct {
	Booking `bson:",inline"`
	Event   *BookingEvent `bson:"event,omitempty" json:"event,omitempty"`
	User    *BookingOwner `bson:"user,omitempty" json:"user,omitempty"`
}
