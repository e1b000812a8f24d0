package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hustlerkashish/G-block-society/ledger"
	"github.com/hustlerkashish/G-block-society/middlewares"
	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/validations"
)

// EventStore is the event persistence the handlers need.
type EventStore interface {
	ListEvents(ctx context.Context) ([]models.EventWithCreator, error)
	FindEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	InsertEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, id primitive.ObjectID, req *validations.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

// EventAnalytics answers the derived per-event rollup.
type EventAnalytics interface {
	EventStats(ctx context.Context, eventID primitive.ObjectID) (*models.EventStats, error)
}

type EventController struct {
	events    EventStore
	analytics EventAnalytics
}

func NewEventController(events EventStore, analytics EventAnalytics) *EventController {
	return &EventController{events: events, analytics: analytics}
}

// ListEvents returns all events, creator username populated.
func (ec *EventController) ListEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	events, err := ec.events.ListEvents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	if events == nil {
		events = []models.EventWithCreator{}
	}
	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	event, err := ec.events.FindEvent(ctx, id)
	if err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event. Admin only (route-gated). Attendees
// always starts at zero; only the ledger moves it afterwards.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req validations.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := middlewares.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	event := &models.Event{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Attendees:   0,
		Status:      models.EventStatusUpcoming,
		IsPaid:      req.IsPaid,
		Price:       req.Price,
		Description: req.Description,
		CreatedBy:   account.ID,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := ec.events.InsertEvent(ctx, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update. Admin only (route-gated).
func (ec *EventController) UpdateEvent(c *gin.Context) {
	var req validations.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	event, err := ec.events.UpdateEvent(ctx, id, &req)
	if err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent hard-deletes an event. Admin only (route-gated).
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := ec.events.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// QuoteBooking prices a prospective booking for the calling account
// without creating anything.
func (ec *EventController) QuoteBooking(c *gin.Context) {
	var req validations.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	account := middlewares.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	event, err := ec.events.FindEvent(ctx, id)
	if err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		}
		return
	}

	amount := ComputeQuote(event, req.Attendees, account.FamilyMemberCount)
	c.JSON(http.StatusOK, gin.H{
		"amount":          amount,
		"requiresPayment": amount > 0,
	})
}

// EventStats returns the live rollup for one event. Admin only (route-gated).
func (ec *EventController) EventStats(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if _, err := ec.events.FindEvent(ctx, id); err != nil {
		if errors.Is(err, ledger.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		}
		return
	}

	stats, err := ec.analytics.EventStats(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute event stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
