package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
	"realm-server/pkg/api"
)

// HandleUnequip обрабатывает команду UNEQUIP-ITEM - снять предмет из слота
func HandleUnequip(ctx handlers.Context, p api.UnequipPayload) (handlers.Result, error) {
	msg, err := systems.Unequip(ctx.Actor, p.Slot)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(msg), nil
}
