package systems

import (
	"errors"
	"strings"
	"testing"

	"realm-server/internal/domain"
)

func TestResolveStrike(t *testing.T) {
	skills := map[string]*domain.Skill{domain.SkillHunting: {Level: 50}}

	tests := []struct {
		name       string
		attacker   domain.StatsComponent
		target     domain.StatsComponent
		weakness   string
		floats     []float64
		wantDmg    float64
		wantDodged bool
		wantCrit   bool
	}{
		{"Plain hit", domain.StatsComponent{Dmg: 10}, domain.StatsComponent{}, "", nil, 10, false, false},
		{"Dodged", domain.StatsComponent{Dmg: 10}, domain.StatsComponent{Dodge: 5}, "", []float64{0.01}, 0, true, false},
		{"Dodge roll fails", domain.StatsComponent{Dmg: 10}, domain.StatsComponent{Dodge: 5}, "", []float64{0.5}, 10, false, false},
		{"Critical doubles", domain.StatsComponent{Dmg: 10, Critical: 5}, domain.StatsComponent{}, "", []float64{0.02}, 20, false, true},
		{"Weakness multiplier", domain.StatsComponent{Dmg: 10}, domain.StatsComponent{}, domain.SkillHunting, nil, 15, false, false},
		{"Unknown weakness ignored", domain.StatsComponent{Dmg: 10}, domain.StatsComponent{}, "alchemy", nil, 10, false, false},
		{"Crit and weakness", domain.StatsComponent{Dmg: 10, Critical: 100}, domain.StatsComponent{}, domain.SkillHunting, []float64{0.5}, 30, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ResolveStrike(&tt.attacker, skills, &tt.target, tt.weakness, &scriptedRand{floats: tt.floats})
			if s.Damage != tt.wantDmg || s.Dodged != tt.wantDodged || s.Critical != tt.wantCrit {
				t.Errorf("ResolveStrike() = %+v, want dmg=%v dodged=%v crit=%v", s, tt.wantDmg, tt.wantDodged, tt.wantCrit)
			}
		})
	}
}

func TestAttackCooldown(t *testing.T) {
	if AttackCooldown(0) != 0 {
		t.Error("Speed 0 must give cooldown 0")
	}
	if AttackCooldown(0.5) != 2000 {
		t.Errorf("AttackCooldown(0.5) = %v, want 2000", AttackCooldown(0.5))
	}
}

func TestJoinCombat_Rules(t *testing.T) {
	env, _ := newTestEnv(nil)
	hero := addPlayer(env, "player1", "", domain.Origin)
	goblin := addMob(env, 0, "goblin1", domain.Origin)
	orc := addMob(env, 1, "orc1", domain.Origin)
	far := addMob(env, 2, "slime1", domain.Position{X: 3, Y: 3})

	if _, err := JoinCombat(env, hero, far); !errors.Is(err, ErrTargetNotHere) {
		t.Errorf("Expected ErrTargetNotHere for distant target, got %v", err)
	}
	if _, err := JoinCombat(env, hero, nil); !errors.Is(err, ErrTargetNotHere) {
		t.Errorf("Expected ErrTargetNotHere for missing target, got %v", err)
	}

	changed, err := JoinCombat(env, hero, goblin)
	if err != nil || !changed {
		t.Fatalf("JoinCombat failed: changed=%v err=%v", changed, err)
	}
	if hero.Player.Attacking != goblin.ID || !goblin.Mob.Attackers.Contains(hero.ID) {
		t.Fatal("Bidirectional link not established")
	}
	if hero.Player.AttackCooldown != AttackCooldown(hero.Stats.Speed) {
		t.Errorf("Cooldown not reset, got %v", hero.Player.AttackCooldown)
	}

	// Повторный выбор той же цели - пустая операция
	if changed, err := JoinCombat(env, hero, goblin); changed || err != nil {
		t.Errorf("Re-declare must be a no-op, got changed=%v err=%v", changed, err)
	}

	// Смена цели отцепляет от прежней
	if _, err := JoinCombat(env, hero, orc); err != nil {
		t.Fatal(err)
	}
	if goblin.Mob.Attackers.Contains(hero.ID) {
		t.Error("Switching targets must detach from the previous one")
	}
	if hero.Player.Attacking != orc.ID || !orc.Mob.Attackers.Contains(hero.ID) {
		t.Error("Switching targets must attach to the new one")
	}

	StopCombat(env.World, hero)
	if hero.Player.Attacking != "" || orc.Mob.Attackers.Len() != 0 {
		t.Error("StopCombat must clear both sides")
	}

	goblin.Mob.RespawnUntil = testNow.Add(1)
	if _, err := JoinCombat(env, hero, goblin); !errors.Is(err, ErrTargetRespawning) {
		t.Errorf("Expected ErrTargetRespawning, got %v", err)
	}
}

func TestJoinCombat_SixthAttackerRejected(t *testing.T) {
	env, _ := newTestEnv(nil)
	orc := addMob(env, 1, "orc1", domain.Origin)

	for i := 1; i <= 5; i++ {
		p := addPlayer(env, "player"+string(rune('0'+i)), "", domain.Origin)
		if _, err := JoinCombat(env, p, orc); err != nil {
			t.Fatalf("Attacker %d rejected: %v", i, err)
		}
	}

	sixth := addPlayer(env, "player6", "", domain.Origin)
	_, err := JoinCombat(env, sixth, orc)
	if err == nil || !strings.Contains(err.Error(), "fully engaged") {
		t.Fatalf("Expected full-engagement rejection, got %v", err)
	}
	if orc.Mob.Attackers.Len() != 5 {
		t.Errorf("Attacker count changed: %d", orc.Mob.Attackers.Len())
	}
	if sixth.Player.Attacking != "" {
		t.Error("Rejected player must not be attacking")
	}

	// Уже участвующий игрок может повторить команду и при полном списке
	first := env.World.GetPlayer("player1")
	if _, err := JoinCombat(env, first, orc); err != nil {
		t.Errorf("Existing attacker must not be rejected: %v", err)
	}
}

func TestJoinCombat_PvP(t *testing.T) {
	env, rec := newTestEnv(&scriptedRand{floats: []float64{0.99, 0.99}})
	a := addPlayer(env, "player1", "", domain.Origin)
	b := addPlayer(env, "player2", "", domain.Origin)

	if _, err := JoinCombat(env, a, a); !errors.Is(err, ErrSelfTarget) {
		t.Errorf("Expected ErrSelfTarget, got %v", err)
	}
	if _, err := JoinCombat(env, a, b); err != nil {
		t.Fatal(err)
	}
	if a.Player.Attacking != b.ID || b.Attackers() != nil {
		t.Fatal("PvP must be one-directional without attacker sets")
	}
	if b.Player.Attacking != "" {
		t.Error("Defender must not be forced to attack back")
	}

	a.Stats.Dmg = 500
	a.Player.AttackCooldown = 0
	if !PlayerAttackTick(env, a) {
		t.Fatal("Expected a strike")
	}
	if !b.Player.IsDead || b.Stats.HP != 0 {
		t.Errorf("Defender must be dead with hp 0, got dead=%v hp=%v", b.Player.IsDead, b.Stats.HP)
	}
	if len(rec.combat) != 1 || !strings.Contains(rec.combat[0], "deals 500.0 damage to player2") {
		t.Errorf("Unexpected combat log: %v", rec.combat)
	}

	// На следующем шаге бой с мёртвой целью разрывается
	PlayerAttackTick(env, a)
	if a.Player.Attacking != "" {
		t.Error("Attacking a dead player must stop")
	}
}
