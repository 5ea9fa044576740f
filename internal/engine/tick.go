package engine

import (
	"realm-server/internal/systems"

	"github.com/sirupsen/logrus"
)

// step - один шаг симуляции: удары игроков, жизненный цикл объектов,
// удаление разрушенного. Снимок рассылается, только если что-то изменилось.
func (s *GameService) step() {
	env := s.newEnv()
	changed := false

	for _, p := range s.World.Registry.Players() {
		if systems.PlayerAttackTick(env, p) {
			changed = true
		}
	}

	for _, o := range s.World.Registry.Objects() {
		if env.IsDoomed(o.ID) {
			continue
		}
		switch {
		case o.Mob != nil:
			if systems.MobCombatTick(env, o) {
				changed = true
			}
			if systems.MobRespawnTick(env, o) {
				changed = true
			}
		case o.Site != nil:
			if systems.ConstructionTick(env, o) {
				changed = true
			}
		case o.Siege != nil:
			if systems.SiegeTick(env, o) {
				changed = true
			}
		}
	}

	if removed := env.Sweep(); removed > 0 {
		s.log.WithFields(logrus.Fields{"tick": s.tick, "removed": removed}).Debug("Destroyed entities swept")
		changed = true
	}

	s.tick++
	if changed {
		s.publish()
	}
}
