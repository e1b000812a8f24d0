package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/hustlerkashish/G-block-society/config"
	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	db := os.Getenv("MONGO_DB")
	if db == "" {
		db = "society_management"
	}

	client := config.ConnectDB(uri)
	seedAdmin(client, db)

	r := gin.Default()
	router.EventRoutes(r, client, db)
	router.BookingRoutes(r, client, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the default admin account on first run so a fresh
// deployment is immediately usable.
func seedAdmin(client *mongo.Client, db string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := config.GetCollection(client, db, "users")
	count, err := users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		log.Fatal("Error checking for admin user:", err)
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing admin password:", err)
	}

	now := time.Now()
	admin := models.User{
		Username:   "admin",
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		HomeNumber: "A001",
		Name:       "System Administrator",
		Email:      "admin@society.com",
		Phone:      "9876543210",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := users.InsertOne(ctx, admin); err != nil {
		log.Fatal("Error creating default admin user:", err)
	}
	log.Println("Default admin user created")
}
