package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Socialnet/auth"
	"Socialnet/database"
	"Socialnet/models"
	"Socialnet/utils/httpctx"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		id, _ := httpctx.CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "request_id": httpctx.RequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func serve(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestTokenAuthMiddleware tests token parsing and the user existence check
func TestTokenAuthMiddleware(t *testing.T) {
	db, err := database.OpenSQLite(":memory:?_foreign_keys=on", nil)
	require.NoError(t, err)

	user := models.User{Email: "alice@example.com", Username: "alice", Password: "hash"}
	require.NoError(t, db.Omit(clause.Associations).Create(&user).Error)

	auth.Configure("test-secret", 0)
	r := newRouter(TokenAuthMiddleware(db))

	w := serve(r, "/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_jwt")

	w = serve(r, "/ping", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.CreateToken(user.ID)
	require.NoError(t, err)
	w = serve(r, "/ping", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)

	ghost, err := auth.CreateToken(user.ID + 1)
	require.NoError(t, err)
	w = serve(r, "/ping", ghost)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newRouter(RequestIDMiddleware())

	w := serve(r, "/ping", "")
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, w.Body.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	r := newRouter(MetricsMiddleware())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200"))
	serve(r, "/ping", "")
	serve(r, "/ping", "")
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200"))
	assert.Equal(t, before+2, after)

	serve(r, "/nowhere", "")
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestSentryMiddlewareRecoversPanics(t *testing.T) {
	r := newRouter(RequestIDMiddleware(), SentryMiddleware())

	w := serve(r, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestCORSMiddleware(t *testing.T) {
	r := newRouter(CORSMiddleware([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
