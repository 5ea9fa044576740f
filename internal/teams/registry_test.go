package teams

import (
	"errors"
	"strings"
	"testing"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/domain"
	"realm-server/internal/systems"
)

type recorder struct {
	logs   []string
	direct map[string][]string
}

func (r *recorder) Log(msg string)       { r.logs = append(r.logs, msg) }
func (r *recorder) Combat(string)        {}
func (r *recorder) LogTo(id, msg string) { r.direct[id] = append(r.direct[id], msg) }

func setup(t *testing.T, players ...string) (*Registry, *systems.Env, *recorder) {
	t.Helper()
	cfg := config.Default()
	rec := &recorder{direct: make(map[string][]string)}
	env := systems.NewEnv(domain.NewGameWorld(cfg.MapSize), &cfg, systems.NewRand(), time.Now(), rec)
	for _, id := range players {
		env.World.Registry.Insert(systems.NewPlayer(&cfg, id))
	}
	return NewRegistry(cfg.TeamColors), env, rec
}

func TestCreate(t *testing.T) {
	r, env, rec := setup(t, "player1", "player2")
	p1 := env.World.GetPlayer("player1")

	team, err := r.Create(env, p1, "Builders")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(team.ID, "team_") || len(team.ID) != len("team_")+8 {
		t.Errorf("Unexpected team id %q", team.ID)
	}
	if p1.Team != team.ID || team.AdminID != p1.ID || !team.HasMember(p1.ID) {
		t.Error("Founder must join and become admin")
	}
	if team.Color != "blue-600" || team.JoinPolicy != domain.JoinPolicyOpen {
		t.Errorf("Unexpected defaults: color=%s policy=%s", team.Color, team.JoinPolicy)
	}
	if rec.logs[0] != "Team 'Builders' has been founded by player1!" {
		t.Errorf("Unexpected log %q", rec.logs[0])
	}

	p2 := env.World.GetPlayer("player2")
	if _, err := r.Create(env, p2, "builders"); err == nil {
		t.Error("Team names must be unique case-insensitively")
	}

	second, err := r.Create(env, p2, "Raiders")
	if err != nil {
		t.Fatal(err)
	}
	if second.Color != "red-600" {
		t.Errorf("Colors must cycle, got %s", second.Color)
	}
	if all := r.All(); len(all) != 2 || all[0] != team {
		t.Error("All() must keep creation order")
	}
}

func TestJoinLeave(t *testing.T) {
	r, env, rec := setup(t, "player1", "player2", "player3")
	p1, p2, p3 := env.World.GetPlayer("player1"), env.World.GetPlayer("player2"), env.World.GetPlayer("player3")

	red, _ := r.Create(env, p1, "Red")
	blue, _ := r.Create(env, p3, "Blue")

	if err := r.Join(env, p2, "team_missing"); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("Expected ErrTeamNotFound, got %v", err)
	}
	if err := r.Join(env, p2, red.ID); err != nil {
		t.Fatal(err)
	}
	if err := r.Join(env, p2, red.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("Expected ErrAlreadyMember, got %v", err)
	}

	// Переход в другую команду молча покидает текущую
	if err := r.Join(env, p2, blue.ID); err != nil {
		t.Fatal(err)
	}
	if red.HasMember(p2.ID) || !blue.HasMember(p2.ID) || p2.Team != blue.ID {
		t.Error("Switching teams must move membership")
	}

	// Уход админа передаёт права первому участнику
	if err := r.Leave(env, p3); err != nil {
		t.Fatal(err)
	}
	if blue.AdminID != p2.ID {
		t.Errorf("Admin = %s, want player2", blue.AdminID)
	}

	// Последний участник распускает команду
	if err := r.Leave(env, p1); err != nil {
		t.Fatal(err)
	}
	if r.Get(red.ID) != nil || r.Len() != 1 {
		t.Error("Empty team must be disbanded")
	}
	if !strings.Contains(strings.Join(rec.logs, "\n"), "Team 'Red' has been disbanded.") {
		t.Error("Disband not announced")
	}

	if err := r.Leave(env, p1); !errors.Is(err, ErrNotInTeam) {
		t.Errorf("Expected ErrNotInTeam, got %v", err)
	}
	r.LeaveSilently(env, p1)
	if p1.Team != "" {
		t.Error("Silent leave without a team must leave the player teamless")
	}
}

func TestLeaveSilently(t *testing.T) {
	r, env, rec := setup(t, "player1", "player2")
	p1, p2 := env.World.GetPlayer("player1"), env.World.GetPlayer("player2")

	team, _ := r.Create(env, p1, "Quiet")
	if err := r.Join(env, p2, team.ID); err != nil {
		t.Fatal(err)
	}
	rec.logs = nil

	r.LeaveSilently(env, p1)
	if team.HasMember(p1.ID) || p1.Team != "" {
		t.Error("Silent leave must remove membership")
	}
	if team.AdminID != p2.ID {
		t.Errorf("Admin = %s, want player2", team.AdminID)
	}
	for _, l := range rec.logs {
		if strings.Contains(l, "has left team") {
			t.Errorf("Silent leave must not announce the departure: %q", l)
		}
	}

	r.LeaveSilently(env, p2)
	if r.Get(team.ID) != nil {
		t.Error("Silent leave of the last member must disband the team")
	}
}

func TestRequestFlow(t *testing.T) {
	r, env, rec := setup(t, "player1", "player2", "player3")
	admin, asker, other := env.World.GetPlayer("player1"), env.World.GetPlayer("player2"), env.World.GetPlayer("player3")

	team, _ := r.Create(env, admin, "Closed")
	if err := r.UpdateSettings(env, asker, team.ID, "x", domain.JoinPolicyRequest); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("Expected ErrNotAdmin, got %v", err)
	}
	long := strings.Repeat("a", 150)
	if err := r.UpdateSettings(env, admin, team.ID, long, domain.JoinPolicyRequest); err != nil {
		t.Fatal(err)
	}
	if len(team.Description) != MaxDescription || team.JoinPolicy != domain.JoinPolicyRequest {
		t.Errorf("Settings not applied: len=%d policy=%s", len(team.Description), team.JoinPolicy)
	}

	if err := r.Join(env, asker, team.ID); !errors.Is(err, ErrRequestRequired) {
		t.Errorf("Expected ErrRequestRequired, got %v", err)
	}
	if err := r.RequestToJoin(env, asker, team.ID); err != nil {
		t.Fatal(err)
	}
	if err := r.RequestToJoin(env, asker, team.ID); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("Expected ErrDuplicateRequest, got %v", err)
	}
	if err := r.RequestToJoin(env, admin, team.ID); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("Members cannot request, got %v", err)
	}
	if err := r.RequestToJoin(env, other, team.ID); err != nil {
		t.Fatal(err)
	}

	if err := r.ResolveRequest(env, admin, team.ID, asker.ID, true); err != nil {
		t.Fatal(err)
	}
	if asker.Team != team.ID || team.HasRequest(asker.ID) {
		t.Error("Accepted request must force the join and clear the request")
	}
	if got := rec.direct[asker.ID]; got[len(got)-1] != "Your request to join 'Closed' was accepted." {
		t.Errorf("Unexpected notice: %v", got)
	}

	if err := r.ResolveRequest(env, admin, team.ID, other.ID, false); err != nil {
		t.Fatal(err)
	}
	if other.Team != "" || team.HasRequest(other.ID) {
		t.Error("Declined request must be dropped without joining")
	}
	if err := r.ResolveRequest(env, admin, team.ID, other.ID, true); !errors.Is(err, ErrNoSuchRequest) {
		t.Errorf("Expected ErrNoSuchRequest, got %v", err)
	}
}

func TestForget(t *testing.T) {
	r, env, _ := setup(t, "player1", "player2")
	team, _ := r.Create(env, env.World.GetPlayer("player1"), "Closed")
	team.JoinPolicy = domain.JoinPolicyRequest
	_ = r.RequestToJoin(env, env.World.GetPlayer("player2"), team.ID)

	r.Forget("player2")
	if team.HasRequest("player2") {
		t.Error("Forget must drop pending requests")
	}
}
