package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
	"realm-server/pkg/api"
)

func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	// Цель ищется в общем пространстве id; проверки клетки и окна защиты - в системе боя
	target := ctx.World.GetEntity(p.TargetID)

	changed, err := systems.JoinCombat(ctx.Env, ctx.Actor, target)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Changed: changed}, nil
}
