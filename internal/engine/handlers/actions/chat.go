package actions

import (
	"realm-server/internal/domain"
	"realm-server/internal/engine/handlers"
	"realm-server/pkg/api"
)

const defaultChannel = "global"

// HandleChat кладёт сообщение в буфер чата и рассылает его.
// Снимок мира не публикуется: буфер уйдёт со следующим.
func HandleChat(ctx handlers.Context, p api.ChatPayload) (handlers.Result, error) {
	channel := p.Channel
	if channel == "" {
		channel = defaultChannel
	}

	msg := domain.ChatMessage{
		Channel:    channel,
		SenderID:   ctx.Actor.ID,
		SenderTeam: ctx.Actor.Team,
		Text:       p.Text,
		Timestamp:  ctx.Now.Format("15:04:05"),
		Location:   ctx.Actor.Pos,
		TargetID:   ctx.Actor.Player.Attacking,
	}
	ctx.Chat.Append(msg)
	ctx.Events.BroadcastChat(msg)

	return handlers.EmptyResult(), nil
}
