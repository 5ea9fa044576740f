package systems

import (
	"fmt"

	"realm-server/internal/config"
	"realm-server/internal/domain"
)

// Loot - выпавший предмет и его количество
type Loot struct {
	Name     string
	Quantity int
}

// RollLoot бросает каждую строку таблицы независимо.
// Количество равномерно в [Min, Max].
func RollLoot(drops []config.Drop, rng Rand) []Loot {
	var out []Loot
	for _, d := range drops {
		if rng.Float64() >= d.Chance {
			continue
		}
		q := d.Min
		if d.Max > d.Min {
			q += rng.Intn(d.Max - d.Min + 1)
		}
		out = append(out, Loot{Name: d.Name, Quantity: q})
	}
	return out
}

// GrantLoot выдаёт каждый предмет каждому живому атакующему моба
func GrantLoot(env *Env, mob *domain.Entity, loot []Loot) {
	if len(loot) == 0 {
		return
	}
	for _, id := range mob.Mob.Attackers.IDs() {
		p := env.World.GetPlayer(id)
		if p == nil || p.Player.IsDead {
			continue
		}
		for _, l := range loot {
			p.Player.AddStack(l.Name, l.Quantity)
			env.Notify.LogTo(p.ID, fmt.Sprintf("%s received %dx %s!", p.ID, l.Quantity, l.Name))
		}
	}
}
