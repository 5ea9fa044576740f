package systems

import (
	"math"

	"realm-server/internal/domain"
)

// RecomputePlayerStats - итоговые статы игрока: база + бонусы надетых вещей,
// затем maxHp умножается на 1 + level/100 навыка hp. HP возвращается равным MaxHP.
func RecomputePlayerStats(base domain.StatsComponent, equipment map[string]*domain.Item, skills map[string]*domain.Skill) domain.StatsComponent {
	out := base
	for _, slot := range domain.EquipmentSlots {
		item := equipment[slot]
		if item == nil || item.Stats == nil {
			continue
		}
		out.MaxHP += item.Stats.MaxHP
		out.Dmg += item.Stats.Dmg
		out.Speed += item.Stats.Speed
		out.Critical += item.Stats.Critical
		out.Dodge += item.Stats.Dodge
	}

	if s, ok := skills[domain.SkillHP]; ok && s != nil {
		out.MaxHP = math.Floor(out.MaxHP * (1 + float64(s.Level)/100))
	}
	out.HP = out.MaxHP
	return out
}

// ApplyPlayerStats пересчитывает статы игрока, сохраняя текущее hp (но не выше нового максимума)
func ApplyPlayerStats(e *domain.Entity) {
	current := e.Player.BaseStats.HP
	if e.Stats != nil {
		current = e.Stats.HP
	}
	stats := RecomputePlayerStats(e.Player.BaseStats, e.Player.Equipment, e.Player.Skills)
	stats.HP = current
	stats.ClampHP()
	e.Stats = &stats
}

// ScaleMob пересчитывает статы моба под его уровень: множитель 1 + (level-1)*scaling,
// maxHp и dmg округляются вниз, скорость нет. HP восполняется, перезарядка сбрасывается.
func ScaleMob(e *domain.Entity, scaling float64) {
	m := e.Mob
	mult := 1 + float64(m.Level-1)*scaling

	if e.Stats == nil {
		e.Stats = &domain.StatsComponent{}
	}
	e.Stats.MaxHP = math.Floor(m.BaseStats.HP * mult)
	e.Stats.Dmg = math.Floor(m.BaseStats.Dmg * mult)
	e.Stats.Speed = m.BaseStats.Speed * mult
	e.Stats.Critical = m.BaseStats.Critical
	e.Stats.Dodge = m.BaseStats.Dodge
	e.Stats.HP = e.Stats.MaxHP
	m.AttackCooldown = AttackCooldown(e.Stats.Speed)
}
