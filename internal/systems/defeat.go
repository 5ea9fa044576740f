package systems

import (
	"fmt"

	"realm-server/internal/domain"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ResolveDefeat вызывается из прохода атак игроков, когда hp цели дошло до нуля.
// Игрок умирает (инвентарь и команда остаются), моб повышает уровень и уходит
// на респавн с раздачей лута, площадка помечается к удалению вместе с осадой.
func ResolveDefeat(env *Env, killer, target *domain.Entity) {
	env.Notify.Log(fmt.Sprintf("%s defeated %s!", killer.ID, target.ID))

	defeatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "lifecycle",
		"killer_id": killer.ID,
		"target_id": target.ID,
	})

	switch {
	case target.IsPlayer():
		KillPlayer(env.World, target)
		defeatLogger.Info("Player defeated.")

	case target.Mob != nil:
		target.Mob.Level++
		ScaleMob(target, env.Config.StatScaling)
		target.Mob.RespawnUntil = env.Now.Add(env.Config.RespawnDelay())

		tmpl, ok := mobTemplate(env, target.Mob.TemplateID)
		if ok {
			GrantLoot(env, target, RollLoot(tmpl.Drops, env.Rng))
		}
		defeatLogger.WithField("level", target.Mob.Level).Info("Mob defeated.")

	case target.Site != nil:
		DestroySite(env, target)
		env.Notify.Log(fmt.Sprintf("%s has been destroyed!", target.ID))
		defeatLogger.Info("Construction site destroyed by players.")
	}
}

// KillPlayer помечает игрока мёртвым и отцепляет его от боя
func KillPlayer(world *domain.GameWorld, p *domain.Entity) {
	p.Stats.HP = 0
	p.Player.IsDead = true
	StopCombat(world, p)
}

// DestroySite помечает площадку и все нацеленные на неё осадные машины к удалению
func DestroySite(env *Env, site *domain.Entity) {
	env.MarkDestroyed(site.ID)
	for _, o := range env.World.Registry.Objects() {
		if o.Siege != nil && o.Siege.TargetID == site.ID {
			env.MarkDestroyed(o.ID)
		}
	}
}
