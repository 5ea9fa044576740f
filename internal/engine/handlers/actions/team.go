package actions

import (
	"realm-server/internal/domain"
	"realm-server/internal/engine/handlers"
	"realm-server/pkg/api"
)

func HandleCreateTeam(ctx handlers.Context, p api.CreateTeamPayload) (handlers.Result, error) {
	if _, err := ctx.Teams.Create(ctx.Env, ctx.Actor, p.TeamName); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleJoinTeam(ctx handlers.Context, p api.TeamPayload) (handlers.Result, error) {
	if err := ctx.Teams.Join(ctx.Env, ctx.Actor, p.TeamID); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleLeaveTeam(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Teams.Leave(ctx.Env, ctx.Actor); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleUpdateTeamSettings(ctx handlers.Context, p api.TeamSettingsPayload) (handlers.Result, error) {
	err := ctx.Teams.UpdateSettings(ctx.Env, ctx.Actor, p.TeamID, p.Description, domain.JoinPolicy(p.JoinPolicy))
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleRequestToJoin(ctx handlers.Context, p api.TeamPayload) (handlers.Result, error) {
	if err := ctx.Teams.RequestToJoin(ctx.Env, ctx.Actor, p.TeamID); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}

func HandleResolveJoinRequest(ctx handlers.Context, p api.ResolveJoinPayload) (handlers.Result, error) {
	err := ctx.Teams.ResolveRequest(ctx.Env, ctx.Actor, p.TeamID, p.RequesterID, p.Decision == "accept")
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Changed(""), nil
}
