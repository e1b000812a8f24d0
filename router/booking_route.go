package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hustlerkashish/G-block-society/config"
	"github.com/hustlerkashish/G-block-society/controllers"
	"github.com/hustlerkashish/G-block-society/ledger"
	"github.com/hustlerkashish/G-block-society/middlewares"
	"github.com/hustlerkashish/G-block-society/store"
)

func BookingRoutes(r *gin.Engine, client *mongo.Client, db string) {
	events := config.GetCollection(client, db, "events")
	bookings := config.GetCollection(client, db, "bookings")
	users := config.GetCollection(client, db, "users")
	familyMembers := config.GetCollection(client, db, "familymembers")

	auth := middlewares.Authenticate(store.NewAccountStore(users, familyMembers))
	bookingController := controllers.NewBookingController(
		store.NewBookingStore(bookings),
		store.NewEventStore(events),
		ledger.NewEventLedger(events),
	)

	grp := r.Group("/bookings", auth)
	grp.POST("", bookingController.CreateBooking)
	grp.GET("/user/:userId", bookingController.GetUserBookings)
	grp.DELETE("/:id", bookingController.CancelBooking)
	grp.GET("", middlewares.RequireAdmin(), bookingController.GetAllBookings)
	grp.PUT("/:id", middlewares.RequireAdmin(), bookingController.UpdateBookingStatus)
}
