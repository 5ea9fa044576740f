package engine

import (
	"realm-server/internal/domain"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// logTimeLayout - префикс времени в общих сообщениях лога
const logTimeLayout = "[15:04:05] "

// Log - сообщение для всех подключённых. Дублируется в серверный лог.
func (s *GameService) Log(msg string) {
	logger.Log.WithField("component", "game_log").Info(msg)
	s.Hub.Broadcast(api.ServerMessage{
		Type:    api.MsgLog,
		Message: s.now().Format(logTimeLayout) + msg,
	})
}

// LogTo - сообщение одному игроку. Если игрок уже отключился, сообщение теряется.
func (s *GameService) LogTo(playerID, msg string) {
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"player_id": playerID,
	}).Debug(msg)

	session, ok := s.owners[playerID]
	if !ok {
		return
	}
	s.Hub.SendTo(session, api.ServerMessage{Type: api.MsgLog, Message: msg})
}

// Combat - описание удара, для всех
func (s *GameService) Combat(msg string) {
	logger.Log.WithField("component", "game_log").Debug(msg)
	s.Hub.Broadcast(api.ServerMessage{Type: api.MsgCombatLog, Message: msg})
}

// BroadcastChat рассылает сообщение чата. Снимок при этом не публикуется.
func (s *GameService) BroadcastChat(msg domain.ChatMessage) {
	logger.Log.WithFields(logrus.Fields{
		"component": "chat",
		"channel":   msg.Channel,
		"sender":    msg.SenderID,
	}).Info(msg.Text)

	view := chatView(msg)
	s.Hub.Broadcast(api.ServerMessage{Type: api.MsgChat, Chat: &view})
}

func errorMessage(text string) api.ServerMessage {
	return api.ServerMessage{Type: api.MsgError, Message: text}
}
