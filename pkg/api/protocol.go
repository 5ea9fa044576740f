package api

import (
	"encoding/json"
)

// Типы исходящих сообщений
const (
	MsgLog           = "log"
	MsgCombatLog     = "combatLog"
	MsgGameState     = "gameState"
	MsgPlayerCreated = "playerCreated"
	MsgError         = "error"
	MsgChat          = "chat"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerMessage это корневой объект, который сервер отправляет клиенту.
// Заполняются только поля, относящиеся к Type.
type ServerMessage struct {
	// Type один из Msg* выше.
	Type string `json:"type"`

	// Message текст для log, combatLog, error и playerCreated.
	Message string `json:"message,omitempty"`

	// PlayerID выданный идентификатор (только playerCreated).
	PlayerID string `json:"playerId,omitempty"`

	// State полный снимок мира (только gameState).
	State *GameState `json:"state,omitempty"`

	// Chat одно сообщение чата (только chat).
	Chat *ChatView `json:"chat,omitempty"`
}

// GameState это полный "снимок" мира. Одинаковый для всех подписчиков.
type GameState struct {
	// Tick номер шага симуляции, на котором сделан снимок.
	Tick uint64 `json:"tick"`

	// MapSize сторона квадратной карты.
	MapSize int `json:"mapSize"`

	Players      []PlayerView        `json:"players"`
	Objects      []ObjectView        `json:"objects"`
	Teams        map[string]TeamView `json:"teams"`
	ChatMessages []ChatView          `json:"chatMessages"`

	// World сетка [y][x]: id живых игроков и объектов в каждой клетке.
	World [][]CellView `json:"world"`
}

// CellView - содержимое одной клетки пространственного индекса
type CellView struct {
	Players []string `json:"players"`
	Objects []string `json:"objects"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP       float64 `json:"hp"`
	MaxHP    float64 `json:"maxHp"`
	Dmg      float64 `json:"dmg"`
	Speed    float64 `json:"speed"`
	Critical float64 `json:"critical,omitempty"`
	Dodge    float64 `json:"dodge,omitempty"`
	SelfDmg  float64 `json:"selfDmg,omitempty"`
}

// ItemStatsView - бонусы предмета
type ItemStatsView struct {
	MaxHP    float64 `json:"maxHp,omitempty"`
	Dmg      float64 `json:"dmg,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Critical float64 `json:"critical,omitempty"`
	Dodge    float64 `json:"dodge,omitempty"`
}

// ItemView представляет предмет для клиента. Quantity только у стакающихся.
type ItemView struct {
	Name     string         `json:"name"`
	Slot     string         `json:"slot,omitempty"`
	Stats    *ItemStatsView `json:"stats,omitempty"`
	Quantity int            `json:"quantity,omitempty"`
}

type SkillView struct {
	Level int `json:"level"`
	Exp   int `json:"exp"`
}

// PlayerView это DTO игрока.
type PlayerView struct {
	ID             string               `json:"id"`
	Type           string               `json:"type"`
	X              int                  `json:"x"`
	Y              int                  `json:"y"`
	Team           string               `json:"team,omitempty"`
	BaseStats      StatsView            `json:"baseStats"`
	Stats          StatsView            `json:"stats"`
	Inventory      []ItemView           `json:"inventory"`
	Equipment      map[string]*ItemView `json:"equipment"`
	Skills         map[string]SkillView `json:"skills"`
	Attacking      string               `json:"attacking,omitempty"`
	AttackCooldown float64              `json:"attackCooldown"`
	IsDead         bool                 `json:"isDead"`
}

// Materials - накопленные или требуемые ресурсы площадки
type Materials struct {
	Bricks int `json:"bricks"`
}

// ObjectView это DTO для монстров, площадок и осадных машин.
// Поля, не относящиеся к типу объекта, опускаются.
type ObjectView struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Team string `json:"team,omitempty"`

	Stats StatsView `json:"stats"`

	// Монстры и площадки
	Level        int      `json:"level,omitempty"`
	Attackers    []string `json:"attackers,omitempty"`
	MaxAttackers int      `json:"maxAttackers,omitempty"`

	// Монстры
	TemplateID     int     `json:"templateId,omitempty"`
	Weakness       string  `json:"weakness,omitempty"`
	RespawnUntil   int64   `json:"respawnUntil,omitempty"` // Unix milliseconds
	AttackCooldown float64 `json:"attackCooldown,omitempty"`

	// Площадки
	Materials                 *Materials `json:"materials,omitempty"`
	RequiredMaterials         *Materials `json:"requiredMaterials,omitempty"`
	ConstructionCompleteUntil int64      `json:"constructionCompleteUntil,omitempty"` // Unix milliseconds

	// Осадные машины
	TargetID string `json:"targetId,omitempty"`
}

// TeamView это DTO команды.
type TeamView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Members     []string `json:"members"`
	Color       string   `json:"color"`
	AdminID     string   `json:"adminId"`
	Description string   `json:"description"`
	JoinPolicy  string   `json:"joinPolicy"`
	Requests    []string `json:"requests"`
}

// Location - клетка, из которой отправлено сообщение чата
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChatView представляет одно сообщение чата.
type ChatView struct {
	Channel    string   `json:"channel"`
	SenderID   string   `json:"senderId"`
	SenderTeam string   `json:"senderTeam,omitempty"`
	Text       string   `json:"text"`
	Timestamp  string   `json:"timestamp"`
	Location   Location `json:"location"`
	TargetID   string   `json:"targetId,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// Поля команды можно передать либо в Payload, либо прямо рядом с Action
// ({"action":"move","x":1,"y":2}).
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// MovePayload - абсолютные координаты клетки назначения (MOVE).
type MovePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EntityPayload используется для действий, нацеленных на другую сущность (ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// EquipPayload - индекс предмета в инвентаре.
type EquipPayload struct {
	ItemIndex int `json:"itemIndex"`
}

// UnequipPayload - слот, который нужно освободить.
type UnequipPayload struct {
	Slot string `json:"slot"`
}

// ChatPayload - сообщение в канал.
type ChatPayload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// CreateTeamPayload - название новой команды.
type CreateTeamPayload struct {
	TeamName string `json:"teamName"`
}

// TeamPayload используется для JOIN-TEAM и REQUEST-TO-JOIN.
type TeamPayload struct {
	TeamID string `json:"teamId"`
}

// TeamSettingsPayload - настройки, которые может менять админ.
type TeamSettingsPayload struct {
	TeamID      string `json:"teamId"`
	Description string `json:"description"`
	JoinPolicy  string `json:"joinPolicy"`
}

// ResolveJoinPayload - решение админа по заявке.
type ResolveJoinPayload struct {
	TeamID      string `json:"teamId"`
	RequesterID string `json:"requesterId"`
	Decision    string `json:"decision"` // accept | decline
}
