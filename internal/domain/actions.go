package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionCreate
	ActionMove
	ActionAttack
	ActionRespawn
	ActionBuild
	ActionDonate
	ActionDeploySiege
	ActionEquip
	ActionUnequip
	ActionChat
	ActionCreateTeam
	ActionJoinTeam
	ActionLeaveTeam
	ActionUpdateTeamSettings
	ActionRequestToJoin
	ActionResolveJoinRequest

	// ActionDisconnect генерирует транспорт при закрытии соединения, клиент его прислать не может
	ActionDisconnect
)

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionCreate:             "create",
	ActionMove:               "move",
	ActionAttack:             "attack",
	ActionRespawn:            "respawn",
	ActionBuild:              "build",
	ActionDonate:             "donate",
	ActionDeploySiege:        "deploySiege",
	ActionEquip:              "equip-item",
	ActionUnequip:            "unequip-item",
	ActionChat:               "chat",
	ActionCreateTeam:         "create-team",
	ActionJoinTeam:           "join-team",
	ActionLeaveTeam:          "leave-team",
	ActionUpdateTeamSettings: "update-team-settings",
	ActionRequestToJoin:      "request-to-join",
	ActionResolveJoinRequest: "resolve-join-request",
	ActionDisconnect:         "disconnect",
}

// Маппинг для конвертации JSON -> Domain (ключи в нижнем регистре)
var actionStringToCmd = func() map[string]ActionType {
	m := make(map[string]ActionType, len(actionCmdToString))
	for action, name := range actionCmdToString {
		if action == ActionDisconnect {
			continue
		}
		m[strings.ToLower(name)] = action
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType (без учёта регистра)
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToLower(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
