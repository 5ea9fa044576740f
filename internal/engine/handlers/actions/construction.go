package actions

import (
	"realm-server/internal/engine/handlers"
	"realm-server/internal/systems"
)

func HandleBuild(ctx handlers.Context) (handlers.Result, error) {
	if err := systems.TryBuild(ctx.Env, ctx.Actor); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleDonate(ctx handlers.Context) (handlers.Result, error) {
	if err := systems.TryDonate(ctx.Env, ctx.Actor); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleDeploySiege(ctx handlers.Context) (handlers.Result, error) {
	if err := systems.TryDeploySiege(ctx.Env, ctx.Actor); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}
