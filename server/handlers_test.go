// File: server/handlers_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

// --- Test Setup ---
func setupTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	engine := bollywood.NewEngine()
	s := New(engine, nil)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(func() {
		ts.Close()
		engine.Shutdown(time.Second)
	})
	return s, ts
}

func testSnapshot(tick uint64) game.Snapshot {
	return game.Snapshot{
		MatchID: "m1",
		Tick:    tick,
		Status:  game.StatusRunning,
		Arena:   utils.Rect{W: 800, H: 600},
		Ball:    game.Ball{X: 10, Y: 20, Width: 50, Height: 50, Vx: 4},
		Winner:  game.NoPlayer,
	}
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/subscribe"
	ws, err := websocket.Dial(url, "", ts.URL)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func receive(t *testing.T, ws *websocket.Conn) Envelope {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env Envelope
	require.NoError(t, websocket.JSON.Receive(ws, &env))
	return env
}

func TestHandleHealth(t *testing.T) {
	_, ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestHandleGetState(t *testing.T) {
	s, ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	s.Sink().Publish(testSnapshot(7))

	resp, err = http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, float64(7), raw["tick"])
	assert.Equal(t, "running", raw["status"])
	assert.Equal(t, "m1", raw["matchId"])
}

func TestHandleGetState_CORS(t *testing.T) {
	_, ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHandleSubscribe_Stream(t *testing.T) {
	s, ts := setupTestServer(t)
	sink := s.Sink()
	sink.Publish(testSnapshot(1))

	ws := dial(t, ts)
	first := receive(t, ws)
	assert.Equal(t, "snapshot", first.MessageType)
	require.NotNil(t, first.Snapshot)
	assert.Equal(t, uint64(1), first.Snapshot.Tick, "latest state is sent on connect")

	require.Eventually(t, func() bool {
		n, err := s.ClientCount()
		return err == nil && n == 1
	}, time.Second, 5*time.Millisecond)

	sink.Publish(testSnapshot(2))
	next := receive(t, ws)
	require.NotNil(t, next.Snapshot)
	assert.Equal(t, uint64(2), next.Snapshot.Tick)

	sink.MatchEnded(game.MatchEnded{MatchID: "m1", Winner: 1, WinnerName: "Ana", FinalScores: [2]int{0, 1}})
	ended := receive(t, ws)
	assert.Equal(t, "matchEnded", ended.MessageType)
	require.NotNil(t, ended.MatchEnded)
	assert.Equal(t, "Ana", ended.MatchEnded.WinnerName)
}

func TestHandleSubscribe_DisconnectRemovesClient(t *testing.T) {
	s, ts := setupTestServer(t)
	ws := dial(t, ts)

	require.Eventually(t, func() bool {
		n, _ := s.ClientCount()
		return n == 1
	}, time.Second, 5*time.Millisecond)

	ws.Close()
	assert.Eventually(t, func() bool {
		n, _ := s.ClientCount()
		return n == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSessionFeedsSpectators(t *testing.T) {
	s, ts := setupTestServer(t)
	session := game.NewGameSession(utils.DefaultConfig(), nil, s.Sink(), nil)
	require.NoError(t, session.NewGame())
	session.Tick(0)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap game.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, session.ID(), snap.SessionID)
	assert.Equal(t, uint64(1), snap.Tick)
}
