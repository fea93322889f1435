package routes

import (
	"Whist/controllers"
	"Whist/middleware"
	"Whist/services/game"
	store "Whist/services/redis"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	redisClient := store.FromClient(client, time.Hour)

	engine := game.NewEngine(redisClient, slog.Default())
	tokens := middleware.NewTokenIssuer("integration-secret", time.Hour)

	r := gin.New()
	middleware.SetUpMiddleware(r, "integration-key", "*", false)
	SetupRoutes(r, Dependencies{
		Store:   redisClient,
		Tokens:  tokens,
		Rooms:   &controllers.RoomController{Engine: engine, Tokens: tokens, Logger: slog.Default()},
		Results: &controllers.ResultsController{Logger: slog.Default()},
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newBrowser returns a client that keeps cookies like a browser does.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func postJSON(t *testing.T, c *http.Client, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := c.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func getJSON(t *testing.T, c *http.Client, url string) (int, map[string]any) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	srv := startServer(t)
	owner := newBrowser(t)
	guest := newBrowser(t)

	status, body := getJSON(t, owner, srv.URL+"/ping")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body["message"])

	status, created := postJSON(t, owner, srv.URL+"/api/new-game", `{"username":"ana"}`)
	require.Equal(t, http.StatusCreated, status)
	code := created["roomId"].(string)
	require.NotEmpty(t, code)

	status, joined := postJSON(t, guest, srv.URL+"/api/join-game/"+code, `{"username":"bea"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, code, joined["roomId"])

	// the session cookie set on join authenticates the following requests
	status, me := getJSON(t, guest, srv.URL+"/api/whoami")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, me["owner"])
	assert.Equal(t, "bea", me["player"].(map[string]any)["name"])

	status, me = getJSON(t, owner, srv.URL+"/api/whoami")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, me["owner"])

	status, room := getJSON(t, owner, srv.URL+"/api/rooms/"+code)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, room["users"], 2)
	assert.Equal(t, false, room["started"])

	// a fresh browser has neither cookie nor header
	status, _ = getJSON(t, newBrowser(t), srv.URL+"/api/whoami")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = postJSON(t, newBrowser(t), srv.URL+"/api/join-game/"+code, `{"username":"ana"}`)
	assert.Equal(t, http.StatusConflict, status)
}

func TestBearerTokenOverHTTP(t *testing.T) {
	srv := startServer(t)
	c := &http.Client{Timeout: 10 * time.Second}

	status, created := postJSON(t, c, srv.URL+"/api/new-game", `{"username":"ana","type":"8-1-8"}`)
	require.Equal(t, http.StatusCreated, status)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/rooms/"+created["roomId"].(string), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+created["token"].(string))
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var room map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&room))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "8-1-8", room["type"])
}
