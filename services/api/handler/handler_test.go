package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testIssuer = auth.NewIssuer("handler-test-secret", time.Hour)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter builds a bare router that resolves identities like the real one
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(auth.IdentityMiddleware(testIssuer))
	return router
}

// doRequest sends body (raw string or marshalled value) as actor; actor 0 is anonymous
func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, actor uint) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actor != 0 {
		token, err := testIssuer.Issue(actor)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)
	require.Equal(t, message, decodeBody(t, w)["error"])
}
