package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/engine"
	"realm-server/internal/network"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// setupServer поднимает движок и HTTP-сервер на httptest
func setupServer(t *testing.T, tweaks ...func(*config.Config)) (*engine.GameService, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	cfg.MapSize = 2
	cfg.MobsPerCell = 1
	for _, tweak := range tweaks {
		tweak(&cfg)
	}

	game := engine.NewService(cfg, network.NewBroadcaster())
	ctx, cancel := context.WithCancel(context.Background())
	go game.Run(ctx)

	srv := New(game, "0")
	srv.ctx = ctx
	ts := httptest.NewServer(srv.Router())

	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return game, ts
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitFor читает JSON-кадры, пока не встретится сообщение нужного типа
func waitFor(t *testing.T, conn *websocket.Conn, typ string) api.ServerMessage {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		if err := conn.SetReadDeadline(deadline); err != nil {
			t.Fatalf("set deadline: %v", err)
		}
		var msg api.ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", typ, err)
		}
		if msg.Type == typ {
			return msg
		}
	}
}

func TestWebSocketCreateAndMove(t *testing.T) {
	game, ts := setupServer(t)
	conn := dial(t, ts, "")

	welcome := waitFor(t, conn, api.MsgLog)
	if welcome.Message != welcomeText {
		t.Errorf("Expected welcome text, got %q", welcome.Message)
	}

	if err := conn.WriteJSON(map[string]any{"action": "create"}); err != nil {
		t.Fatalf("write create: %v", err)
	}
	created := waitFor(t, conn, api.MsgPlayerCreated)
	if created.PlayerID == "" {
		t.Fatal("playerCreated without id")
	}

	// Плоская форма команды
	if err := conn.WriteJSON(map[string]any{"action": "move", "x": 1, "y": 1}); err != nil {
		t.Fatalf("write move: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for moved := false; !moved; {
		state := waitFor(t, conn, api.MsgGameState).State
		for _, p := range state.Players {
			if p.ID == created.PlayerID && p.X == 1 && p.Y == 1 {
				moved = true
			}
		}
		if !moved && time.Now().After(deadline) {
			t.Fatal("Player never reached (1, 1)")
		}
	}

	if latest := game.Latest(); latest == nil || len(latest.Players) != 1 {
		t.Errorf("Latest snapshot should contain the player, got %+v", latest)
	}
}

func TestWebSocketRejectsGarbage(t *testing.T) {
	_, ts := setupServer(t)
	conn := dial(t, ts, "")
	waitFor(t, conn, api.MsgLog)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := waitFor(t, conn, api.MsgError)
	if msg.Message != "Invalid message format." {
		t.Errorf("Expected format error, got %q", msg.Message)
	}

	if err := conn.WriteJSON(map[string]any{"action": "teleport"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg = waitFor(t, conn, api.MsgError)
	if msg.Message != "Unknown action." {
		t.Errorf("Expected unknown action error, got %q", msg.Message)
	}
}

func TestWebSocketMsgpack(t *testing.T) {
	_, ts := setupServer(t)
	conn := dial(t, ts, "?encoding=msgpack")

	frame, err := msgpack.Marshal(map[string]any{"action": "create"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(3 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.BinaryMessage {
			t.Fatalf("Expected binary frames, got %d", kind)
		}
		var msg map[string]any
		if err := msgpack.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg["type"] == api.MsgPlayerCreated {
			if id, _ := msg["playerId"].(string); !strings.HasPrefix(id, "player") {
				t.Errorf("Unexpected player id %v", msg["playerId"])
			}
			return
		}
	}
}

func TestHTTPEndpoints(t *testing.T) {
	_, ts := setupServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health returned %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/debug/entities?type=mob")
	if err != nil {
		t.Fatalf("debug entities: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Players []api.PlayerView `json:"players"`
		Objects []api.ObjectView `json:"objects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Objects) != 4 {
		t.Errorf("Expected 4 mobs on a 2x2 map, got %d", len(body.Objects))
	}
	if body.Players != nil {
		t.Error("type=mob must not include players")
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header missing, got %q", got)
	}
}

func TestWebSocketRateLimit(t *testing.T) {
	_, ts := setupServer(t, func(cfg *config.Config) {
		cfg.CommandRate = 0.01
		cfg.CommandBurst = 1
	})
	conn := dial(t, ts, "")
	waitFor(t, conn, api.MsgLog)

	for i := 0; i < 2; i++ {
		if err := conn.WriteJSON(map[string]any{"action": "teleport"}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	first := waitFor(t, conn, api.MsgError)
	second := waitFor(t, conn, api.MsgError)
	if first.Message != "Unknown action." || second.Message != "Too many commands." {
		t.Errorf("Expected unknown action then rate limit, got %q and %q", first.Message, second.Message)
	}
}
