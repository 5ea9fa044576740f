package domain

import "time"

// --- КОМПОНЕНТЫ ---

// StatsComponent - боевые характеристики. HP дробное: урон не округляется.
type StatsComponent struct {
	HP       float64 `json:"hp"`
	MaxHP    float64 `json:"maxHp"`
	Dmg      float64 `json:"dmg"`
	Speed    float64 `json:"speed"`
	Critical float64 `json:"critical"` // шанс крита в процентах
	Dodge    float64 `json:"dodge"`    // шанс уклонения в процентах
	SelfDmg  float64 `json:"selfDmg,omitempty"`
}

// Skill - уровень и опыт одного навыка
type Skill struct {
	Level int `json:"level"`
	Exp   int `json:"exp"`
}

// PlayerComponent - всё, что есть только у игрока.
// Stats сущности всегда производные: BaseStats + экипировка + навыки.
type PlayerComponent struct {
	BaseStats      StatsComponent    `json:"baseStats"`
	Equipment      map[string]*Item  `json:"equipment"`
	Inventory      []*Item           `json:"inventory"`
	Skills         map[string]*Skill `json:"skills"`
	Attacking      string            `json:"attacking,omitempty"`
	AttackCooldown float64           `json:"attackCooldown"`
	IsDead         bool              `json:"isDead"`
}

// MobComponent - монстр. Никогда не удаляется, только растёт в уровне и респавнится.
type MobComponent struct {
	TemplateID     int            `json:"templateId"`
	Level          int            `json:"level"`
	BaseStats      StatsComponent `json:"baseStats"`
	Weakness       string         `json:"weakness,omitempty"`
	RespawnUntil   time.Time      `json:"respawnUntil,omitempty"`
	Attackers      *AttackerSet   `json:"attackers"`
	AttackCooldown float64        `json:"attackCooldown"`
}

// IsRespawning - моб в окне респавна: неуязвим и бездействует
func (m *MobComponent) IsRespawning() bool {
	return !m.RespawnUntil.IsZero()
}

// SiteComponent - строительная площадка команды
type SiteComponent struct {
	Level          int          `json:"level"`
	Bricks         int          `json:"bricks"`
	RequiredBricks int          `json:"requiredBricks"`
	CompleteAt     time.Time    `json:"constructionCompleteUntil,omitempty"`
	Attackers      *AttackerSet `json:"attackers"`
}

// IsBuilding - идёт повышение уровня
func (s *SiteComponent) IsBuilding() bool {
	return !s.CompleteAt.IsZero()
}

// SiegeComponent - осадная машина. Цель фиксируется при создании.
type SiegeComponent struct {
	TargetID       string  `json:"targetId"`
	AttackCooldown float64 `json:"attackCooldown"`
}
