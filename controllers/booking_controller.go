package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hustlerkashish/G-block-society/ledger"
	"github.com/hustlerkashish/G-block-society/middlewares"
	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/store"
	"github.com/hustlerkashish/G-block-society/utils"
	"github.com/hustlerkashish/G-block-society/validations"
)

// BookingStore is the booking persistence the workflow needs.
type BookingStore interface {
	Insert(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindPopulated(ctx context.Context, id primitive.ObjectID) (*models.PopulatedBooking, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.PopulatedBooking, error)
	List(ctx context.Context, skip, limit int) ([]models.PopulatedBooking, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.PopulatedBooking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventFinder looks up the event a booking targets.
type EventFinder interface {
	FindEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
}

// CapacityLedger adjusts the event attendee counter atomically.
type CapacityLedger interface {
	Reserve(ctx context.Context, eventID primitive.ObjectID, count int) error
	Release(ctx context.Context, eventID primitive.ObjectID, count int) error
}

type BookingController struct {
	bookings BookingStore
	events   EventFinder
	ledger   CapacityLedger
}

func NewBookingController(bookings BookingStore, events EventFinder, capacity CapacityLedger) *BookingController {
	return &BookingController{bookings: bookings, events: events, ledger: capacity}
}

// CreateBooking handles "attend event E with N attendees": requote the
// charge server-side, simulate payment when the quote is non-zero,
// reserve capacity, then persist the booking.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req validations.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid eventId"})
		return
	}

	account := middlewares.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	event, err := bc.events.FindEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		}
		return
	}

	amount := ComputeQuote(event, req.Attendees, account.FamilyMemberCount)

	reference := ""
	if amount > 0 {
		reference, err = utils.ProcessPayment(amount, req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment failed"})
			return
		}
	}

	if err := bc.ledger.Reserve(ctx, eventID, req.Attendees); err != nil {
		switch {
		case errors.Is(err, ledger.ErrCapacityExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event capacity exceeded"})
		case errors.Is(err, ledger.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reserve capacity"})
		}
		return
	}

	booking := &models.Booking{
		UserID:              account.ID,
		EventID:             eventID,
		Attendees:           req.Attendees,
		Status:              models.BookingStatusConfirmed,
		SpecialRequirements: req.SpecialRequirements,
		Amount:              amount,
		PaymentStatus:       models.PaymentStatusCompleted,
		PaymentMethod:       req.PaymentMethod,
		PaymentReference:    reference,
	}

	if err := bc.bookings.Insert(ctx, booking); err != nil {
		// Undo the reservation so no partial state survives.
		if relErr := bc.ledger.Release(ctx, eventID, req.Attendees); relErr != nil {
			log.Printf("failed to release %d seats on event %s after insert error: %v",
				req.Attendees, eventID.Hex(), relErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	populated, err := bc.bookings.FindPopulated(ctx, booking.ID)
	if err != nil {
		c.JSON(http.StatusCreated, booking)
		return
	}
	c.JSON(http.StatusCreated, populated)
}

// GetUserBookings lists a user's bookings. Residents may only see their own.
func (bc *BookingController) GetUserBookings(c *gin.Context) {
	account := middlewares.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	userIDParam := c.Param("userId")
	if account.ID.Hex() != userIDParam && !account.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	bookings, err := bc.bookings.ListByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.PopulatedBooking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookings lists every booking, paginated. Admin only (route-gated).
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	pagination := utils.GetPagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	bookings, total, err := bc.bookings.List(ctx, pagination.Skip, pagination.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.PopulatedBooking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     pagination.Page,
		"limit":    pagination.Limit,
		"total":    total,
		"bookings": bookings,
	})
}

// UpdateBookingStatus transitions a booking's status. Admin only (route-gated).
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req validations.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	booking, err := bc.bookings.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking releases the booked seats back to the event, then deletes
// the booking. Only the owner or an admin may cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	account := middlewares.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	booking, err := bc.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		}
		return
	}

	if booking.UserID != account.ID && !account.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	// The event may already be deleted; the booking is still cancellable.
	if err := bc.ledger.Release(ctx, booking.EventID, booking.Attendees); err != nil && !errors.Is(err, ledger.ErrEventNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to release capacity"})
		return
	}

	if err := bc.bookings.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrBookingNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
