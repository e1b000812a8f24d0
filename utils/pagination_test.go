package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/bookings"+query, nil)
	return GetPagination(c)
}

func TestGetPaginationDefaults(t *testing.T) {
	p := paginationFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Skip)
}

func TestGetPaginationComputesSkip(t *testing.T) {
	p := paginationFor(t, "?page=3&limit=20")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Skip)
}

func TestGetPaginationClampsBadInput(t *testing.T) {
	p := paginationFor(t, "?page=-1&limit=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = paginationFor(t, "?limit=5000")
	assert.Equal(t, 100, p.Limit)
}
