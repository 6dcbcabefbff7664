package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-house/internal/auctionerrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"unauthorized", auctionerrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized."},
		{"wrapped_not_found", fmt.Errorf("service: event 9: %w", auctionerrors.ErrEventNotExist), http.StatusNotFound, "Event does not exist"},
		{"validation", auctionerrors.ErrNameError, http.StatusBadRequest, "Auction name cannot be blank"},
		{"invalid_request", auctionerrors.ErrInvalidRequest, http.StatusBadRequest, "Invalid request."},
		{"conflict", auctionerrors.ErrEventNotOpened, http.StatusConflict, "Event is not opened"},
		{"password_mismatch", auctionerrors.ErrPasswordInvalid, http.StatusUnauthorized, "Invalid password."},
		{"store_error", errors.New("UNIQUE constraint failed: users.email"), http.StatusInternalServerError, "Internal server error."},
		{"wrapped_store_error", fmt.Errorf("service: failed to get event 2: %w", errors.New("database is locked")), http.StatusInternalServerError, "Internal server error."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, message := MapErrorToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantMessage, message)
		})
	}
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		path string
		want uint
	}{
		{"/x/12", 12},
		{"/x/0", 0},
		{"/x/-3", 0},
		{"/x/abc", 0},
		{"/x/1.5", 0},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			var got uint
			router := gin.New()
			router.GET("/x/:id", func(c *gin.Context) { got = ParamID(c, "id") })
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, "TestHandler", errors.New("pq: password authentication failed"), nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Internal server error."}`, w.Body.String())
}
