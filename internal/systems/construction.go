package systems

import (
	"errors"
	"fmt"
	"math"

	"realm-server/internal/domain"
	"realm-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrActorDead      = errors.New("You can't do that while dead.")
	ErrNoTeamBuild    = errors.New("You must be in a team to build.")
	ErrNoTeamSiege    = errors.New("You must be in a team to deploy siege engines.")
	ErrSiteExists     = errors.New("A construction site already exists here.")
	ErrNoFriendlySite = errors.New("No friendly construction site in this area.")
	ErrNoBricks       = errors.New("No bricks to donate.")
	ErrSiteSatisfied  = errors.New("Site does not need more bricks for the current upgrade.")
	ErrNoEnemySite    = errors.New("There is no enemy construction site here to attack.")
)

// SiteID - id площадки строится из команды и клетки
func SiteID(team string, pos domain.Position) string {
	return fmt.Sprintf("site_t%s_%d_%d", team, pos.X, pos.Y)
}

// TryBuild закладывает площадку команды игрока в его клетке (одна на команду на клетку)
func TryBuild(env *Env, actor *domain.Entity) error {
	if actor.IsDead() || actor.Team == "" {
		return ErrNoTeamBuild
	}
	id := SiteID(actor.Team, actor.Pos)
	if env.World.SiteAt(actor.Pos, actor.Team) != nil || env.World.GetEntity(id) != nil {
		return ErrSiteExists
	}

	cfg := env.Config
	site := &domain.Entity{
		ID:   id,
		Type: domain.EntityTypeConstructionSite,
		Name: "Construction Site",
		Pos:  actor.Pos,
		Team: actor.Team,
		Stats: &domain.StatsComponent{
			HP:    cfg.ConstructionBaseHP,
			MaxHP: cfg.ConstructionBaseHP,
		},
		Site: &domain.SiteComponent{
			Level:          1,
			RequiredBricks: cfg.RequiredBricks(1),
			Attackers:      domain.NewAttackerSet(cfg.MaxAttackers),
		},
	}
	env.World.Registry.Insert(site)
	env.World.Reindex()

	env.Notify.Log(fmt.Sprintf("%s started a construction site at (%d, %d).", actor.ID, actor.Pos.X, actor.Pos.Y))
	return nil
}

// TryDonate отдаёт кирпичи дружественной площадке, но не больше, чем ей нужно.
// Набрав требуемое, площадка запускает таймер повышения уровня.
func TryDonate(env *Env, actor *domain.Entity) error {
	if actor.IsDead() {
		return ErrActorDead
	}
	if actor.Team == "" {
		return ErrNoFriendlySite
	}
	site := env.World.SiteAt(actor.Pos, actor.Team)
	if site == nil {
		return ErrNoFriendlySite
	}

	have := actor.Player.CountOf(domain.ItemBrick)
	if have <= 0 {
		return ErrNoBricks
	}
	s := site.Site
	give := min(have, s.RequiredBricks-s.Bricks)
	if give <= 0 {
		return ErrSiteSatisfied
	}

	actor.Player.TakeStack(domain.ItemBrick, give)
	s.Bricks += give
	env.Notify.Log(fmt.Sprintf("%s donated %d bricks.", actor.ID, give))

	if s.Bricks >= s.RequiredBricks {
		start := env.Now
		if s.CompleteAt.After(start) {
			start = s.CompleteAt
		}
		s.CompleteAt = start.Add(env.Config.ConstructionTime(s.RequiredBricks))

		left := math.Ceil(s.CompleteAt.Sub(env.Now).Seconds())
		env.Notify.Log(fmt.Sprintf("Construction for next level has begun! Time remaining: %.0fs", left))

		logger.Log.WithFields(logrus.Fields{
			"component": "construction",
			"site_id":   site.ID,
			"level":     s.Level,
			"complete":  s.CompleteAt,
		}).Info("Site upgrade scheduled.")
	}
	return nil
}

// TryDeploySiege тратит SiegeCost кирпичей и ставит осадную машину против чужой площадки в клетке
func TryDeploySiege(env *Env, actor *domain.Entity) error {
	if actor.IsDead() {
		return ErrActorDead
	}
	if actor.Team == "" {
		return ErrNoTeamSiege
	}
	enemy := env.World.EnemySiteAt(actor.Pos, actor.Team)
	if enemy == nil {
		return ErrNoEnemySite
	}

	cfg := env.Config
	if !actor.Player.TakeStack(domain.ItemBrick, cfg.SiegeCost) {
		return fmt.Errorf("You need %d bricks to deploy a siege machine.", cfg.SiegeCost)
	}

	machine := &domain.Entity{
		ID:   fmt.Sprintf("siege_%s_%s", actor.Team, uuid.NewString()[:8]),
		Type: domain.EntityTypeSiege,
		Name: "Siege Machine",
		Pos:  actor.Pos,
		Team: actor.Team,
		Stats: &domain.StatsComponent{
			HP:      cfg.SiegeHP,
			MaxHP:   cfg.SiegeHP,
			Dmg:     cfg.SiegeDamage,
			SelfDmg: cfg.SiegeSelfDamage,
		},
		Siege: &domain.SiegeComponent{
			TargetID:       enemy.ID,
			AttackCooldown: float64(cfg.SiegeCooldownMs),
		},
	}
	env.World.Registry.Insert(machine)
	env.World.Reindex()

	env.Notify.Log(fmt.Sprintf("%s deployed a siege machine!", actor.ID))
	return nil
}
