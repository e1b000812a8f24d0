package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hustlerkashish/G-block-society/config"
	"github.com/hustlerkashish/G-block-society/controllers"
	"github.com/hustlerkashish/G-block-society/middlewares"
	"github.com/hustlerkashish/G-block-society/store"
)

func EventRoutes(r *gin.Engine, client *mongo.Client, db string) {
	events := config.GetCollection(client, db, "events")
	bookings := config.GetCollection(client, db, "bookings")
	users := config.GetCollection(client, db, "users")
	familyMembers := config.GetCollection(client, db, "familymembers")

	auth := middlewares.Authenticate(store.NewAccountStore(users, familyMembers))
	eventController := controllers.NewEventController(
		store.NewEventStore(events),
		store.NewBookingStore(bookings),
	)

	grp := r.Group("/events", auth)
	grp.GET("", eventController.ListEvents)
	grp.GET("/:id", eventController.GetEvent)
	grp.GET("/:id/quote", eventController.QuoteBooking)
	grp.POST("", middlewares.RequireAdmin(), eventController.CreateEvent)
	grp.PUT("/:id", middlewares.RequireAdmin(), eventController.UpdateEvent)
	grp.DELETE("/:id", middlewares.RequireAdmin(), eventController.DeleteEvent)
	grp.GET("/:id/stats", middlewares.RequireAdmin(), eventController.EventStats)
}
