package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"realm-server/internal/engine"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

const welcomeText = "Welcome to the game! Please create a character."

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService.
// Одно соединение = одна сессия; игрок появляется только по команде create.
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	Session  string
	Encoding api.Encoding

	// Send - личный канал из хаба; закрывается при Unregister
	Send    chan api.ServerMessage
	limiter *rate.Limiter
	log     *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn, enc api.Encoding) *Client {
	session := uuid.NewString()
	cfg := game.Config()
	return &Client{
		Game:     game,
		Conn:     conn,
		Session:  session,
		Encoding: enc,
		Send:     game.Hub.Register(session),
		limiter:  rate.NewLimiter(rate.Limit(cfg.CommandRate), cfg.CommandBurst),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws",
			"session":   session,
			"encoding":  string(enc),
		}),
	}
}

// readPump читает команды от клиента и передаёт их движку
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.Game.Hub.Unregister(c.Session)
		if err := c.Game.Disconnect(ctx, c.Session); err != nil {
			c.log.WithError(err).Debug("disconnect not delivered")
		}
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("WS read error")
			}
			return
		}

		cmd, err := c.Encoding.DecodeCommand(data)
		if err != nil {
			c.log.WithError(err).Debug("undecodable frame")
			c.Game.Hub.SendTo(c.Session, api.ServerMessage{Type: api.MsgError, Message: "Invalid message format."})
			continue
		}

		if !c.limiter.Allow() {
			c.Game.Hub.SendTo(c.Session, api.ServerMessage{Type: api.MsgError, Message: "Too many commands."})
			continue
		}

		err = c.Game.Submit(ctx, c.Session, cmd)
		switch {
		case errors.Is(err, engine.ErrUnknownAction):
			// клиент уже получил ответ от движка
		case err != nil:
			c.log.WithError(err).Info("engine unavailable, closing connection")
			return
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	frameType := websocket.TextMessage
	if c.Encoding.Binary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}

			data, err := c.Encoding.Encode(message)
			if err != nil {
				c.log.WithError(err).WithField("type", message.Type).Error("encode failed")
				continue
			}
			if err := c.Conn.WriteMessage(frameType, data); err != nil {
				c.log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
