package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/utils"
)

const ContextAccount = "account"

// AccountResolver turns a token subject into the account fields request
// handlers need.
type AccountResolver interface {
	Resolve(ctx context.Context, id primitive.ObjectID) (*models.AuthAccount, error)
}

// Authenticate verifies the bearer token and attaches the resolved
// account to the request context.
func Authenticate(accounts AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		id, _ := claims["id"].(string)
		userID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		account, err := accounts.Resolve(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(ContextAccount, account)
		c.Next()
	}
}

// RequireAdmin gates a route to admin accounts. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil || !account.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the account set by Authenticate, or nil.
func CurrentAccount(c *gin.Context) *models.AuthAccount {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return nil
	}
	account, _ := v.(*models.AuthAccount)
	return account
}
