package systems

import (
	"errors"
	"fmt"
	"strings"

	"realm-server/internal/config"
	"realm-server/internal/domain"
)

var ErrOutOfBounds = errors.New("Cannot move outside the map boundaries.")

// NewPlayer собирает игрока в начале координат со стартовыми статами, вещами и навыками
func NewPlayer(cfg *config.Config, id string) *domain.Entity {
	inv := make([]*domain.Item, 0, len(cfg.PlayerInventory))
	for i := range cfg.PlayerInventory {
		inv = append(inv, cfg.PlayerInventory[i].Clone())
	}

	equipment := make(map[string]*domain.Item, len(domain.EquipmentSlots))
	for _, slot := range domain.EquipmentSlots {
		equipment[slot] = nil
	}

	skills := make(map[string]*domain.Skill, len(domain.AllSkills))
	for _, name := range domain.AllSkills {
		skills[name] = &domain.Skill{Level: 1}
	}

	p := &domain.Entity{
		ID:   id,
		Type: domain.EntityTypePlayer,
		Name: id,
		Pos:  domain.Origin,
		Player: &domain.PlayerComponent{
			BaseStats: cfg.PlayerStats,
			Equipment: equipment,
			Inventory: inv,
			Skills:    skills,
		},
	}
	base := cfg.PlayerStats
	p.Stats = &base
	ApplyPlayerStats(p)
	return p
}

// MobID - имя шаблона в нижнем регистре без пробелов плюс порядковый номер
func MobID(templateName string, n int) string {
	return fmt.Sprintf("%s%d", strings.ToLower(strings.ReplaceAll(templateName, " ", "")), n)
}

// NewMob создаёт моба первого уровня по шаблону tmplID
func NewMob(cfg *config.Config, tmplID int, id string, pos domain.Position) *domain.Entity {
	tmpl := cfg.MobTemplates[tmplID]
	mob := &domain.Entity{
		ID:   id,
		Type: domain.EntityTypeMob,
		Name: tmpl.Name,
		Pos:  pos,
		Mob: &domain.MobComponent{
			TemplateID: tmplID,
			Level:      1,
			BaseStats:  tmpl.BaseStats,
			Weakness:   tmpl.Weakness,
			Attackers:  domain.NewAttackerSet(cfg.MaxAttackers),
		},
	}
	ScaleMob(mob, cfg.StatScaling)
	return mob
}

// Move переносит живого игрока в клетку (x, y) и разрывает его бой.
// Мёртвый игрок молча игнорируется.
func Move(env *Env, p *domain.Entity, x, y int) (bool, error) {
	if p.IsDead() {
		return false, nil
	}
	if !env.World.InBounds(x, y) {
		return false, ErrOutOfBounds
	}

	StopCombat(env.World, p)
	env.Notify.Log(fmt.Sprintf("%s moved to (%d, %d).", p.ID, x, y))
	p.Pos = domain.Position{X: x, Y: y}
	return true, nil
}

// Respawn оживляет мёртвого игрока с полным hp в начале координат.
// Для живого игрока ничего не делает.
func Respawn(env *Env, p *domain.Entity) bool {
	if !p.IsDead() {
		return false
	}
	p.Player.IsDead = false
	p.Stats.Refill()
	p.Pos = domain.Origin
	env.Notify.Log(fmt.Sprintf("%s has respawned!", p.ID))
	return true
}
