package agent

import (
	"context"
	"encoding/json"

	"realm-server/internal/domain"
	"realm-server/internal/engine"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot - безголовый игрок внутри процесса. Подписывается на хаб как обычная
// сессия и отправляет команды через тот же Submit, что и websocket-клиент.
//
// Поведение простое: создать героя, бить первого доступного моба в своей клетке,
// если в клетке бить некого - идти в соседнюю, после смерти - воскреснуть.
type Bot struct {
	Session  string
	PlayerID string
	Service  *engine.GameService
	Inbox    chan api.ServerMessage

	log *logrus.Entry
}

func NewBot(session string, service *engine.GameService) *Bot {
	return &Bot{
		Session: session,
		Service: service,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox: service.Hub.Register(session),
		log:   logger.Log.WithFields(logrus.Fields{"component": "bot", "session": session}),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer func() {
		b.Service.Hub.Unregister(b.Session)
		_ = b.Service.Disconnect(context.Background(), b.Session)
		b.log.Info("Bot shut down")
	}()

	if err := b.Service.Submit(ctx, b.Session, api.ClientCommand{Action: domain.ActionCreate.String()}); err != nil {
		b.log.WithError(err).Warn("Bot could not join")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-b.Inbox:
			if !ok {
				return
			}
			b.handle(ctx, msg)
		}
	}
}

func (b *Bot) handle(ctx context.Context, msg api.ServerMessage) {
	switch msg.Type {
	case api.MsgPlayerCreated:
		b.PlayerID = msg.PlayerID
		b.log = b.log.WithField("player_id", b.PlayerID)
		b.log.Info("Bot joined the realm")
	case api.MsgGameState:
		if b.PlayerID == "" || msg.State == nil {
			return
		}
		cmd, ok := NextCommand(msg.State, b.PlayerID)
		if !ok {
			return
		}
		if err := b.Service.Submit(ctx, b.Session, cmd); err != nil {
			b.log.WithError(err).Debug("Bot command dropped")
		}
	}
}

// NextCommand - мозг бота. По снимку решает, что делать дальше.
// false - ничего не делать до следующего снимка.
func NextCommand(state *api.GameState, playerID string) (api.ClientCommand, bool) {
	var me *api.PlayerView
	for i := range state.Players {
		if state.Players[i].ID == playerID {
			me = &state.Players[i]
			break
		}
	}

	switch {
	case me == nil:
		return api.ClientCommand{}, false
	case me.IsDead:
		return api.ClientCommand{Action: domain.ActionRespawn.String()}, true
	case me.Attacking != "":
		return api.ClientCommand{}, false
	}

	if target := pickMob(state, me); target != "" {
		return command(domain.ActionAttack, api.EntityPayload{TargetID: target}), true
	}

	// Соседняя клетка по кругу слева направо, сверху вниз
	x, y := me.X+1, me.Y
	if x >= state.MapSize {
		x, y = 0, (y+1)%state.MapSize
	}
	return command(domain.ActionMove, api.MovePayload{X: x, Y: y}), true
}

// pickMob - первый моб в клетке игрока, который не респавнится и не занят полностью
func pickMob(state *api.GameState, me *api.PlayerView) string {
	for _, o := range state.Objects {
		if o.Type != string(domain.EntityTypeMob) || o.X != me.X || o.Y != me.Y {
			continue
		}
		if o.RespawnUntil != 0 || len(o.Attackers) >= o.MaxAttackers {
			continue
		}
		return o.ID
	}
	return ""
}

func command(action domain.ActionType, payload any) api.ClientCommand {
	raw, _ := json.Marshal(payload)
	return api.ClientCommand{Action: action.String(), Payload: raw}
}
