package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
	"realm-server/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	moved, err := systems.Move(ctx.Env, ctx.Actor, p.X, p.Y)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Changed: moved}, nil
}
