package domain

// EntityType - тип сущности в общем реестре
type EntityType string

const (
	EntityTypePlayer           EntityType = "player"
	EntityTypeMob              EntityType = "mob"
	EntityTypeConstructionSite EntityType = "construction_site"
	EntityTypeSiege            EntityType = "siege"
)

// Навыки игрока (боевые и ремесленные)
const (
	SkillHP           = "hp"
	SkillHeal         = "heal"
	SkillWoodcutting  = "woodcutting"
	SkillCarpentry    = "carpentry"
	SkillMining       = "mining"
	SkillSmithing     = "smithing"
	SkillEngineering  = "engineering"
	SkillConstruction = "construction"
	SkillHunting      = "hunting"
	SkillBattle       = "battle"
)

// AllSkills - порядок навыков у нового игрока
var AllSkills = []string{
	SkillHP, SkillHeal, SkillWoodcutting, SkillCarpentry, SkillMining,
	SkillSmithing, SkillEngineering, SkillConstruction, SkillHunting, SkillBattle,
}

// Слоты экипировки
const (
	SlotHand  = "hand"
	SlotChest = "chest"
)

var EquipmentSlots = []string{SlotHand, SlotChest}

// ItemBrick - строительный материал для площадок и осадных машин
const ItemBrick = "Brick"

// Стартовая точка игроков
var Origin = Position{X: 0, Y: 0}
