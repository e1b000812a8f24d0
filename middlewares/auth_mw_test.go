package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hustlerkashish/G-block-society/models"
	"github.com/hustlerkashish/G-block-society/utils"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, id primitive.ObjectID) (*models.AuthAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthAccount), args.Error(1)
}

func newAuthTestRouter(resolver AccountResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := append([]gin.HandlerFunc{Authenticate(resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no account in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": account.ID.Hex(), "role": account.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthenticateValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	account := &models.AuthAccount{ID: userID, Role: models.RoleResident, HomeNumber: "C12", FamilyMemberCount: 2}

	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, userID).Return(account, nil)

	token, err := utils.GenerateToken(userID.Hex(), models.RoleResident)
	require.NoError(t, err)

	r := newAuthTestRouter(resolver)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.Hex())
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := newAuthTestRouter(new(mockResolver))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedToken(t *testing.T) {
	r := newAuthTestRouter(new(mockResolver))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	userID := primitive.NewObjectID()

	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, userID).Return(nil, assert.AnError)

	token, err := utils.GenerateToken(userID.Hex(), models.RoleResident)
	require.NoError(t, err)

	r := newAuthTestRouter(resolver)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminBlocksResidents(t *testing.T) {
	userID := primitive.NewObjectID()
	account := &models.AuthAccount{ID: userID, Role: models.RoleResident, FamilyMemberCount: 1}

	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, userID).Return(account, nil)

	token, err := utils.GenerateToken(userID.Hex(), models.RoleResident)
	require.NoError(t, err)

	r := newAuthTestRouter(resolver, RequireAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	userID := primitive.NewObjectID()
	account := &models.AuthAccount{ID: userID, Role: models.RoleAdmin, FamilyMemberCount: 1}

	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, userID).Return(account, nil)

	token, err := utils.GenerateToken(userID.Hex(), models.RoleAdmin)
	require.NoError(t, err)

	r := newAuthTestRouter(resolver, RequireAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
