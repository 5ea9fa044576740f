package systems

import (
	"errors"
	"fmt"

	"realm-server/internal/domain"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrTargetNotHere    = errors.New("Target not found in the current area.")
	ErrTargetRespawning = errors.New("You can't attack a respawning enemy.")
	ErrTargetBuilding   = errors.New("You can't attack a site while it is being upgraded.")
	ErrTargetFriendly   = errors.New("You can't attack your own team's site.")
	ErrTargetSiege      = errors.New("Siege machines cannot be attacked.")
	ErrSelfTarget       = errors.New("You can't attack yourself.")
)

// JoinCombat вступает в бой с целью. Возвращает true, если состояние изменилось.
// Повторный выбор той же цели - пустая операция. Смена цели сначала отцепляет
// игрока от прежней. Бой с игроком не использует список атакующих.
func JoinCombat(env *Env, player, target *domain.Entity) (bool, error) {
	if player.IsDead() {
		return false, nil
	}
	if target == nil || target.IsDead() || !player.Collocated(target) {
		return false, ErrTargetNotHere
	}
	if target.ID == player.ID {
		return false, ErrSelfTarget
	}
	if target.Siege != nil {
		return false, ErrTargetSiege
	}
	if target.Mob != nil && target.Mob.IsRespawning() {
		return false, ErrTargetRespawning
	}
	if target.Site != nil {
		if target.Team == player.Team {
			return false, ErrTargetFriendly
		}
		if target.Site.IsBuilding() {
			return false, ErrTargetBuilding
		}
	}

	if player.Player.Attacking == target.ID {
		return false, nil
	}

	if target.IsPlayer() {
		StopCombat(env.World, player)
		player.Player.Attacking = target.ID
		player.Player.AttackCooldown = AttackCooldown(player.Stats.Speed)
		env.Notify.Log(fmt.Sprintf("%s started attacking %s.", player.ID, target.ID))
		return true, nil
	}

	set := target.Attackers()
	if set.Full() && !set.Contains(player.ID) {
		return false, fmt.Errorf("%s is already being fully engaged!", target.ID)
	}

	StopCombat(env.World, player)
	set.Add(player.ID)
	player.Player.Attacking = target.ID
	player.Player.AttackCooldown = AttackCooldown(player.Stats.Speed)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"player_id": player.ID,
		"target_id": target.ID,
		"attackers": set.Len(),
	}).Debug("Player joined combat.")
	env.Notify.Log(fmt.Sprintf("%s joined the attack on %s.", player.ID, target.ID))
	return true, nil
}

// StopCombat разрывает связь игрок -> цель с обеих сторон
func StopCombat(world *domain.GameWorld, player *domain.Entity) {
	if player.Player == nil || player.Player.Attacking == "" {
		return
	}
	old := world.GetEntity(player.Player.Attacking)
	player.Player.Attacking = ""

	if old == nil {
		return
	}
	if set := old.Attackers(); set != nil {
		set.Remove(player.ID)
	}
}

// ReleaseTarget выводит из боя всех, кто атакует targetID (PvP-цель уходит из мира)
func ReleaseTarget(world *domain.GameWorld, targetID string) {
	for _, p := range world.Registry.Players() {
		if p.Player.Attacking == targetID {
			p.Player.Attacking = ""
		}
	}
}
