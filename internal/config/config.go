package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"realm-server/internal/domain"
)

// Config хранит параметры мира. Фиксируется при старте процесса и дальше не меняется.
type Config struct {
	// Общие
	MapSize      int `json:"mapSize"`
	TickMs       int `json:"tickMs"`
	MaxAttackers int `json:"maxAttackers"`
	MobsPerCell  int `json:"mobsPerCell"`

	// Игрок
	PlayerStats     domain.StatsComponent `json:"playerStats"`
	PlayerInventory []domain.Item         `json:"playerInventory"`

	// Строительство
	ConstructionBaseHP         float64 `json:"constructionBaseHp"`
	ConstructionBaseBricks     int     `json:"constructionBaseBricks"`
	ConstructionTimePerBrickMs int     `json:"constructionTimePerBrickMs"`

	// Осада
	SiegeCost       int     `json:"siegeCost"`
	SiegeHP         float64 `json:"siegeHp"`
	SiegeDamage     float64 `json:"siegeDamage"`
	SiegeSelfDamage float64 `json:"siegeSelfDamage"`
	SiegeCooldownMs int     `json:"siegeCooldownMs"`

	// Монстры
	RespawnDelayMs int           `json:"respawnDelayMs"`
	StatScaling    float64       `json:"statScaling"`
	MobTemplates   []MobTemplate `json:"mobTemplates"`

	// Коллабораторы
	ChatBufferSize int      `json:"chatBufferSize"`
	TeamColors     []string `json:"teamColors"`
	CommandRate    float64  `json:"commandRate"`  // команд в секунду на соединение
	CommandBurst   int      `json:"commandBurst"` // допустимый всплеск
}

// Default возвращает эталонные значения игры
func Default() Config {
	return Config{
		MapSize:      8,
		TickMs:       100,
		MaxAttackers: 5,
		MobsPerCell:  9,

		PlayerStats:     domain.StatsComponent{HP: 100, MaxHP: 100, Dmg: 5, Speed: 1, Critical: 5, Dodge: 5},
		PlayerInventory: DefaultInventory(),

		ConstructionBaseHP:         100,
		ConstructionBaseBricks:     10,
		ConstructionTimePerBrickMs: 10000,

		SiegeCost:       10,
		SiegeHP:         300,
		SiegeDamage:     10,
		SiegeSelfDamage: 10,
		SiegeCooldownMs: 1000,

		RespawnDelayMs: 5000,
		StatScaling:    0.10,
		MobTemplates:   DefaultMobTemplates(),

		ChatBufferSize: 100,
		TeamColors:     []string{"blue-600", "red-600", "green-500", "yellow-500", "purple-600", "pink-600", "indigo-500", "teal-500"},
		CommandRate:    20,
		CommandBurst:   40,
	}
}

// Load читает JSON поверх значений по умолчанию. Пустой путь - только умолчания.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate отсекает значения, при которых симуляция не имеет смысла
func (c Config) Validate() error {
	switch {
	case c.MapSize <= 0:
		return errors.New("mapSize must be positive")
	case c.TickMs <= 0:
		return errors.New("tickMs must be positive")
	case c.MaxAttackers <= 0:
		return errors.New("maxAttackers must be positive")
	case c.ConstructionBaseBricks <= 0:
		return errors.New("constructionBaseBricks must be positive")
	case c.SiegeCooldownMs <= 0:
		return errors.New("siegeCooldownMs must be positive")
	case c.ChatBufferSize <= 0:
		return errors.New("chatBufferSize must be positive")
	case len(c.TeamColors) == 0:
		return errors.New("teamColors must not be empty")
	}
	for _, t := range c.MobTemplates {
		for _, d := range t.Drops {
			if d.Min > d.Max || d.Min < 0 {
				return fmt.Errorf("template %s: drop %s has invalid quantity range [%d, %d]", t.Name, d.Name, d.Min, d.Max)
			}
		}
	}
	return nil
}

func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c Config) RespawnDelay() time.Duration {
	return time.Duration(c.RespawnDelayMs) * time.Millisecond
}

// ConstructionTime - длительность достройки для required кирпичей
func (c Config) ConstructionTime(required int) time.Duration {
	return time.Duration(required*c.ConstructionTimePerBrickMs) * time.Millisecond
}

// RequiredBricks - сколько кирпичей нужно площадке уровня level
func (c Config) RequiredBricks(level int) int {
	return c.ConstructionBaseBricks * level
}
