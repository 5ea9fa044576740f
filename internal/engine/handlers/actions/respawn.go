package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
)

// HandleRespawn - живому игроку ничего не делает
func HandleRespawn(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Changed: systems.Respawn(ctx.Env, ctx.Actor)}, nil
}
