package config

import "realm-server/internal/domain"

// Drop - одна строка таблицы лута: шанс и диапазон количества (включительно)
type Drop struct {
	Name   string  `json:"name"`
	Chance float64 `json:"chance"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
}

// MobTemplate определяет шаблон для создания монстра
type MobTemplate struct {
	Name      string                `json:"name"`
	BaseStats domain.StatsComponent `json:"baseStats"`
	Weakness  string                `json:"weakness"`
	Drops     []Drop                `json:"drops"`
}

// --- МОНСТРЫ ---

var Goblin = MobTemplate{
	Name:      "Goblin",
	BaseStats: domain.StatsComponent{HP: 30, Dmg: 3, Speed: 0.8},
	Weakness:  domain.SkillHunting,
	Drops: []Drop{
		{Name: domain.ItemBrick, Chance: 0.80, Min: 1, Max: 2},
		{Name: "Goblin Ear", Chance: 0.25, Min: 1, Max: 1},
	},
}

var Orc = MobTemplate{
	Name:      "Orc",
	BaseStats: domain.StatsComponent{HP: 80, Dmg: 10, Speed: 0.5},
	Weakness:  domain.SkillHunting,
	Drops: []Drop{
		{Name: domain.ItemBrick, Chance: 1.0, Min: 2, Max: 4},
		{Name: "Orc Tusk", Chance: 0.15, Min: 1, Max: 1},
	},
}

var Slime = MobTemplate{
	Name:      "Slime",
	BaseStats: domain.StatsComponent{HP: 20, Dmg: 2, Speed: 1.0},
	Weakness:  domain.SkillHunting,
	Drops: []Drop{
		{Name: domain.ItemBrick, Chance: 1.0, Min: 20, Max: 20},
		{Name: "Slime Gel", Chance: 0.5, Min: 1, Max: 3},
	},
}

var RockGolem = MobTemplate{
	Name:      "Rock Golem",
	BaseStats: domain.StatsComponent{HP: 150, Dmg: 8, Speed: 0.3},
	Weakness:  domain.SkillMining,
	Drops: []Drop{
		{Name: domain.ItemBrick, Chance: 1.0, Min: 10, Max: 20},
		{Name: "Iron Ore", Chance: 0.5, Min: 1, Max: 5},
	},
}

// --- РЕСУРСНЫЕ ТОЧКИ (не бьют в ответ) ---

var MiningSite = MobTemplate{
	Name:      "Mining Site",
	BaseStats: domain.StatsComponent{HP: 500},
	Weakness:  domain.SkillMining,
	Drops:     []Drop{{Name: "Iron Ore", Chance: 1.0, Min: 10, Max: 20}},
}

var WoodCuttingSite = MobTemplate{
	Name:      "Wood Cutting Site",
	BaseStats: domain.StatsComponent{HP: 500},
	Weakness:  domain.SkillWoodcutting,
	Drops:     []Drop{{Name: "Wood", Chance: 1.0, Min: 10, Max: 20}},
}

// DefaultMobTemplates - таблица, из которой случайно выбираются монстры при создании мира
func DefaultMobTemplates() []MobTemplate {
	return []MobTemplate{Goblin, Orc, Slime, RockGolem, MiningSite, WoodCuttingSite}
}

// DefaultInventory - стартовые вещи нового игрока
func DefaultInventory() []domain.Item {
	return []domain.Item{
		{Name: "Rusty Sword", Slot: domain.SlotHand, Stats: &domain.ItemStats{Dmg: 2, Speed: 0.1}},
		{Name: "Leather Tunic", Slot: domain.SlotChest, Stats: &domain.ItemStats{MaxHP: 100}},
	}
}
