package systems

import (
	"fmt"
	"math"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/domain"
)

// PlayerAttackTick - удары одного игрока за шаг. Возвращает true при изменении состояния.
// Пропавшая или уже поверженная цель разрывает бой. Защищённая или ушедшая
// из клетки цель просто не получает ударов.
func PlayerAttackTick(env *Env, p *domain.Entity) bool {
	if p.Player.IsDead || p.Player.Attacking == "" {
		return false
	}

	target := env.World.GetEntity(p.Player.Attacking)
	if target == nil || target.IsDead() || target.IsDepleted() || env.IsDoomed(target.ID) {
		StopCombat(env.World, p)
		return true
	}
	if target.IsProtected() || !p.Collocated(target) || p.Stats.Speed <= 0 {
		return false
	}

	p.Player.AttackCooldown -= env.tickMs()
	if p.Player.AttackCooldown > 0 {
		return false
	}
	p.Player.AttackCooldown = AttackCooldown(p.Stats.Speed)

	weakness := ""
	if target.Mob != nil {
		weakness = target.Mob.Weakness
	}
	s := ResolveStrike(p.Stats, p.Player.Skills, target.Stats, weakness, env.Rng)
	if s.Dodged {
		env.Notify.Combat(fmt.Sprintf("%s dodges an attack from %s.", target.ID, p.ID))
		return true
	}

	env.Notify.Combat(fmt.Sprintf("%s deals %.1f damage to %s.", p.ID, s.Damage, target.ID))
	if target.Stats.TakeDamage(s.Damage) {
		ResolveDefeat(env, p, target)
	}
	return true
}

// MobCombatTick - ответные удары моба по случайному атакующему
func MobCombatTick(env *Env, mob *domain.Entity) bool {
	m := mob.Mob
	if m.Attackers.Len() == 0 || m.IsRespawning() || mob.Stats.HP <= 0 {
		return false
	}

	m.AttackCooldown -= env.tickMs()
	if m.AttackCooldown > 0 || mob.Stats.Dmg <= 0 || mob.Stats.Speed <= 0 {
		return false
	}
	m.AttackCooldown = AttackCooldown(mob.Stats.Speed)

	victim := env.World.GetPlayer(m.Attackers.At(env.Rng.Intn(m.Attackers.Len())))
	if victim == nil || victim.Player.IsDead {
		return true
	}

	s := ResolveStrike(mob.Stats, nil, victim.Stats, "", env.Rng)
	if s.Dodged {
		env.Notify.Combat(fmt.Sprintf("%s dodges an attack from %s.", victim.ID, mob.ID))
		return true
	}

	env.Notify.Combat(fmt.Sprintf("%s deals %.0f damage to %s.", mob.ID, s.Damage, victim.ID))
	if victim.Stats.TakeDamage(s.Damage) {
		KillPlayer(env.World, victim)
		env.Notify.Log(fmt.Sprintf("%s has been defeated by %s!", victim.ID, mob.ID))
	}
	return true
}

// MobRespawnTick завершает окно респавна. Бой продолжают только живые
// атакующие, оставшиеся в клетке моба; остальные выбывают молча.
func MobRespawnTick(env *Env, mob *domain.Entity) bool {
	m := mob.Mob
	if !m.IsRespawning() || env.Now.Before(m.RespawnUntil) {
		return false
	}

	m.RespawnUntil = time.Time{}
	mob.Stats.Refill()
	env.Notify.Log(fmt.Sprintf("%s has respawned!", mob.ID))

	dropped := m.Attackers.Retain(func(id string) bool {
		p := env.World.GetPlayer(id)
		return p != nil && !p.Player.IsDead && p.Collocated(mob)
	})
	for _, id := range dropped {
		if p := env.World.GetPlayer(id); p != nil && p.Player.Attacking == mob.ID {
			p.Player.Attacking = ""
		}
	}
	for _, id := range m.Attackers.IDs() {
		env.World.GetPlayer(id).Player.Attacking = mob.ID
	}
	return true
}

// ConstructionTick завершает повышение уровня площадки, когда истёк таймер
func ConstructionTick(env *Env, site *domain.Entity) bool {
	s := site.Site
	if !s.IsBuilding() || env.Now.Before(s.CompleteAt) {
		return false
	}

	s.CompleteAt = time.Time{}
	s.Level++
	s.Bricks = 0
	s.RequiredBricks = env.Config.RequiredBricks(s.Level)
	site.Stats.MaxHP = env.Config.ConstructionBaseHP * float64(s.Level)
	site.Stats.Refill()

	env.Notify.Log(fmt.Sprintf("Construction site %s has been upgraded to Level %d!", site.ID, s.Level))
	return true
}

// SiegeTick - выстрел осадной машины раз в SiegeCooldownMs.
// Цель и машина получают урон одновременно; разрушенные помечаются к удалению.
func SiegeTick(env *Env, machine *domain.Entity) bool {
	sg := machine.Siege
	sg.AttackCooldown -= env.tickMs()
	if sg.AttackCooldown > 0 {
		return false
	}
	sg.AttackCooldown = float64(env.Config.SiegeCooldownMs)

	target := env.World.GetEntity(sg.TargetID)
	if target != nil && target.Stats != nil && target.Stats.HP > 0 {
		target.Stats.TakeDamage(machine.Stats.Dmg)
		machine.Stats.TakeDamage(machine.Stats.SelfDmg)
		env.Notify.Log(fmt.Sprintf("%s dealt %s damage to %s and took %s damage.",
			machine.ID, formatAmount(machine.Stats.Dmg), target.ID, formatAmount(machine.Stats.SelfDmg)))

		if target.Stats.HP <= 0 {
			env.Notify.Log(fmt.Sprintf("%s has been destroyed by siege engines!", target.ID))
			DestroySite(env, target)
		}
	} else {
		env.MarkDestroyed(machine.ID)
	}

	if machine.Stats.HP <= 0 {
		env.MarkDestroyed(machine.ID)
		env.Notify.Log(fmt.Sprintf("%s has been destroyed.", machine.ID))
	}
	return true
}

func mobTemplate(env *Env, id int) (config.MobTemplate, bool) {
	if id < 0 || id >= len(env.Config.MobTemplates) {
		return config.MobTemplate{}, false
	}
	return env.Config.MobTemplates[id], true
}

// formatAmount печатает целые значения без дробной части
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
