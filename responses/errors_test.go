package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Socialnet/utils/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[apperror.Kind]int{
		apperror.KindNotFound:        http.StatusNotFound,
		apperror.KindConflict:        http.StatusConflict,
		apperror.KindForbidden:       http.StatusForbidden,
		apperror.KindInvalidInput:    http.StatusUnprocessableEntity,
		apperror.KindSelfReference:   http.StatusBadRequest,
		apperror.KindUnauthenticated: http.StatusUnauthorized,
		apperror.Kind(0):             http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusFor(kind), kind.String())
	}
}

func render(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorRendersDomainError(t *testing.T) {
	err := apperror.Invalid(apperror.DomainUser, "username", "bad username")
	w, body := render(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid_username", body.Error)
	assert.Equal(t, "bad username", body.Message)
	assert.Equal(t, "username", body.Field)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	w, body := render(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body.Error)
	assert.Empty(t, body.Message)
}
