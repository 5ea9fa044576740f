package agent

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/engine"
	"realm-server/internal/network"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

func baseState() *api.GameState {
	return &api.GameState{
		MapSize: 2,
		Players: []api.PlayerView{{ID: "player1", X: 1, Y: 0}},
		Objects: []api.ObjectView{
			{ID: "goblin1", Type: "mob", X: 0, Y: 0, MaxAttackers: 5},
			{ID: "goblin2", Type: "mob", X: 1, Y: 0, MaxAttackers: 5, RespawnUntil: 1},
			{ID: "orc1", Type: "mob", X: 1, Y: 0, MaxAttackers: 1, Attackers: []string{"player9"}},
		},
	}
}

func TestNextCommandMovesWhenNothingToFight(t *testing.T) {
	cmd, ok := NextCommand(baseState(), "player1")
	if !ok || cmd.Action != "move" {
		t.Fatalf("Expected move, got %+v (ok=%v)", cmd, ok)
	}

	var p api.MovePayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.X != 0 || p.Y != 1 {
		t.Errorf("Expected wrap to (0, 1), got (%d, %d)", p.X, p.Y)
	}
}

func TestNextCommandAttacksMobInCell(t *testing.T) {
	state := baseState()
	state.Players[0].X = 0

	cmd, ok := NextCommand(state, "player1")
	if !ok || cmd.Action != "attack" {
		t.Fatalf("Expected attack, got %+v", cmd)
	}
	var p api.EntityPayload
	_ = json.Unmarshal(cmd.Payload, &p)
	if p.TargetID != "goblin1" {
		t.Errorf("Expected goblin1, got %s", p.TargetID)
	}
}

func TestNextCommandStates(t *testing.T) {
	state := baseState()

	state.Players[0].Attacking = "goblin1"
	if _, ok := NextCommand(state, "player1"); ok {
		t.Error("Busy bot should wait")
	}

	state.Players[0].IsDead = true
	if cmd, ok := NextCommand(state, "player1"); !ok || cmd.Action != "respawn" {
		t.Errorf("Dead bot should respawn, got %+v", cmd)
	}

	if _, ok := NextCommand(state, "player42"); ok {
		t.Error("Unknown player should wait")
	}
}

func TestBotJoinsAndFights(t *testing.T) {
	cfg := config.Default()
	cfg.MapSize = 1
	cfg.MobsPerCell = 1
	cfg.TickMs = 10

	game := engine.NewService(cfg, network.NewBroadcaster())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go game.Run(ctx)

	bot := NewBot("bot-1", game)
	go bot.Run(ctx)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if state := game.Latest(); state != nil && len(state.Players) == 1 && state.Players[0].Attacking != "" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Bot never engaged a mob")
}
