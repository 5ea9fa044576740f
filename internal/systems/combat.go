package systems

import (
	"realm-server/internal/domain"
)

// Strike - исход одного удара
type Strike struct {
	Damage   float64
	Dodged   bool
	Critical bool
}

// ResolveStrike считает один удар. Сначала бросок уклонения защитника,
// затем крит атакующего (x2), затем множитель слабости 1 + level/100.
// Броски делаются только при ненулевом шансе.
func ResolveStrike(attacker *domain.StatsComponent, skills map[string]*domain.Skill, target *domain.StatsComponent, weakness string, rng Rand) Strike {
	if target != nil && target.Dodge > 0 && rng.Float64()*100 < target.Dodge {
		return Strike{Dodged: true}
	}

	s := Strike{Damage: attacker.Dmg}
	if attacker.Critical > 0 && rng.Float64()*100 < attacker.Critical {
		s.Damage *= 2
		s.Critical = true
	}
	if weakness != "" {
		if skill, ok := skills[weakness]; ok && skill != nil {
			s.Damage *= 1 + float64(skill.Level)/100
		}
	}
	return s
}

// AttackCooldown - пауза между ударами в мс. Скорость 0 - не бьёт вовсе.
func AttackCooldown(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return 1000 / speed
}
