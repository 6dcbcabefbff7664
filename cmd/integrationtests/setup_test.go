package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auth"
	"auction-house/internal/database"
	"auction-house/internal/server"
	"auction-house/services/api/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestEnv is a full application over a private in-memory database
type TestEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// SetupTestEnv initializes the router with a fresh sqlite database for integration testing.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	issuer := auth.NewIssuer("integration-secret", time.Hour)
	router := server.SetupRouter(server.NewServices(db), issuer, nil)
	return &TestEnv{Router: router, DB: db}
}

// ExecuteRequest executes an HTTP request as the holder of token ("" is anonymous)
func ExecuteRequest(t *testing.T, env *TestEnv, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and decodes a JSON object response
func ExecuteRequestAndParse(t *testing.T, env *TestEnv, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := ExecuteRequest(t, env, method, url, body, token)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response: %s", w.Body.String())
	}
	return resp, w
}

// ExecuteListRequest executes an HTTP request expecting a JSON array back
func ExecuteListRequest(t *testing.T, env *TestEnv, url string, token string) ([]map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := ExecuteRequest(t, env, http.MethodGet, url, nil, token)

	var resp []map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response: %s", w.Body.String())
	}
	return resp, w
}

// User is a registered account and its session token
type User struct {
	ID    uint
	Token string
}

// RegisterUser signs up a new account and returns its session
func RegisterUser(t *testing.T, env *TestEnv, email string) User {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/users", helpers.RegisterRequest{
		Email:    email,
		Password: "password1",
		Name:     "Tester",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	u := resp["user"].(map[string]any)
	return User{ID: uint(u["id"].(float64)), Token: resp["token"].(string)}
}

// CreateEvent stores an event owned by owner and returns its id
func CreateEvent(t *testing.T, env *TestEnv, owner User, auctionType, status string) uint {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/events", helpers.EventRequest{
		Name:        fmt.Sprintf("%s event", auctionType),
		Location:    "Lisbon",
		AuctionType: auctionType,
		Category:    "art",
		Status:      status,
	}, owner.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(resp["id"].(float64))
}

// CreateAuction posts a raw auction body as owner
func CreateAuction(t *testing.T, env *TestEnv, owner User, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, env, http.MethodPost, "/auctions", body, owner.Token)
}

func parseTime(t *testing.T, v any) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, v.(string))
	require.NoError(t, err)
	return ts
}
