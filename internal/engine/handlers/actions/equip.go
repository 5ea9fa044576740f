package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
	"realm-server/pkg/api"
)

// HandleEquip обрабатывает команду EQUIP-ITEM - вещь из инвентаря в слот
func HandleEquip(ctx handlers.Context, p api.EquipPayload) (handlers.Result, error) {
	msg, err := systems.Equip(ctx.Actor, p.ItemIndex)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(msg), nil
}
