package domain

// Entity - любая симулируемая сущность: игрок, моб, площадка или осадная машина.
// Компоненты, равные nil, у сущности отсутствуют.
type Entity struct {
	// Идентификация
	ID   string     `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`

	Pos Position `json:"pos"`

	// Team - непрозрачная ссылка на команду (пусто - без команды)
	Team string `json:"team,omitempty"`

	Stats  *StatsComponent  `json:"stats,omitempty"`
	Player *PlayerComponent `json:"player,omitempty"`
	Mob    *MobComponent    `json:"mob,omitempty"`
	Site   *SiteComponent   `json:"site,omitempty"`
	Siege  *SiegeComponent  `json:"siege,omitempty"`
}

func (e *Entity) IsPlayer() bool {
	return e.Player != nil
}

// IsDead - только игроки бывают "мертвыми" без удаления
func (e *Entity) IsDead() bool {
	return e.Player != nil && e.Player.IsDead
}

// Attackers возвращает множество атакующих для мобов и площадок, иначе nil.
func (e *Entity) Attackers() *AttackerSet {
	switch {
	case e.Mob != nil:
		return e.Mob.Attackers
	case e.Site != nil:
		return e.Site.Attackers
	}
	return nil
}

// IsProtected - цель в окне респавна или достройки, бить её нельзя
func (e *Entity) IsProtected() bool {
	if e.Mob != nil && e.Mob.IsRespawning() {
		return true
	}
	return e.Site != nil && e.Site.IsBuilding()
}

// IsDepleted - hp закончилось (или статов нет вовсе)
func (e *Entity) IsDepleted() bool {
	return e.Stats == nil || e.Stats.HP <= 0
}

// Collocated - обе сущности в одной клетке
func (e *Entity) Collocated(other *Entity) bool {
	return e.Pos == other.Pos
}
