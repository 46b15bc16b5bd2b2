package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Socialnet/auth"
	"Socialnet/database"
	"Socialnet/responses"
	"Socialnet/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Secret1!"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	security.Cost = bcrypt.MinCost
	auth.Configure("test-secret", 0)

	db, err := database.OpenSQLite(":memory:?_foreign_keys=on", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	server := &Server{DB: db, Router: gin.New()}
	server.initializeRoutes()
	return server
}

func (server *Server) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

type account struct {
	ID       uint
	Username string
	Token    string
}

// register creates a user over HTTP and logs it in.
func (server *Server) register(t *testing.T, username string, private bool) account {
	t.Helper()
	w := server.do(t, http.MethodPost, "/api/v1/users", "", map[string]interface{}{
		"email":      username + "@example.com",
		"username":   username,
		"password":   testPassword,
		"is_private": private,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created responses.UserSettingsResponse
	decode(t, w, &created)

	w = server.do(t, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    username + "@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var token responses.TokenResponse
	decode(t, w, &token)

	return account{ID: created.ID, Username: created.Username, Token: token.AccessToken}
}

func (server *Server) newPost(t *testing.T, owner account) responses.PostCreatedResponse {
	t.Helper()
	w := server.do(t, http.MethodPost, "/api/v1/posts", owner.Token, map[string]string{
		"title":   "Hello world",
		"content": "First post",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post responses.PostCreatedResponse
	decode(t, w, &post)
	return post
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body responses.ErrorResponse
	decode(t, w, &body)
	return body.Error
}

func apiPath(format string, args ...interface{}) string {
	return "/api/v1" + fmt.Sprintf(format, args...)
}
