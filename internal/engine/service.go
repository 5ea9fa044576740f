package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/domain"
	"realm-server/internal/engine/handlers"
	"realm-server/internal/engine/handlers/actions"
	"realm-server/internal/network"
	"realm-server/internal/systems"
	"realm-server/internal/teams"
	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CommandBuffer - ёмкость очереди команд от транспорта
const CommandBuffer = 256

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrStopped       = errors.New("game service stopped")
)

// Option настраивает GameService (в основном для тестов)
type Option func(*GameService)

// WithRand подменяет источник случайности
func WithRand(rng systems.Rand) Option {
	return func(s *GameService) { s.rng = rng }
}

// WithClock подменяет часы
func WithClock(now func() time.Time) Option {
	return func(s *GameService) { s.now = now }
}

// GameService - единственный владелец состояния мира.
// Всё состояние меняется только из горутины Run.
type GameService struct {
	cfg config.Config

	World *domain.GameWorld
	Teams *teams.Registry
	Chat  *domain.ChatLog
	Hub   *network.Broadcaster

	commands chan domain.InternalCommand
	done     chan struct{}
	handlers map[domain.ActionType]handlers.HandlerFunc

	rng systems.Rand
	now func() time.Time

	// Сессии транспорта <-> игроки
	sessions map[string]string // sessionID -> playerID
	owners   map[string]string // playerID -> sessionID

	nextPlayer int
	tick       uint64

	// Последний опубликованный снимок; читается из HTTP-горутин
	latest atomic.Pointer[api.GameState]

	log *logrus.Entry
}

func NewService(cfg config.Config, hub *network.Broadcaster, opts ...Option) *GameService {
	s := &GameService{
		cfg:      cfg,
		World:    domain.NewGameWorld(cfg.MapSize),
		Teams:    teams.NewRegistry(cfg.TeamColors),
		Chat:     domain.NewChatLog(cfg.ChatBufferSize),
		Hub:      hub,
		commands: make(chan domain.InternalCommand, CommandBuffer),
		done:     make(chan struct{}),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		rng:      systems.NewRand(),
		now:      time.Now,
		sessions: make(map[string]string),
		owners:   make(map[string]string),
		log:      logger.Log.WithField("component", "engine"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerHandlers()
	populateWorld(s.World, &s.cfg, s.rng)
	s.publish()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.handlers[domain.ActionRespawn] = handlers.WithEmptyPayload(actions.HandleRespawn)
	s.handlers[domain.ActionBuild] = handlers.WithEmptyPayload(actions.HandleBuild)
	s.handlers[domain.ActionDonate] = handlers.WithEmptyPayload(actions.HandleDonate)
	s.handlers[domain.ActionDeploySiege] = handlers.WithEmptyPayload(actions.HandleDeploySiege)
	s.handlers[domain.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	s.handlers[domain.ActionUnequip] = handlers.WithPayload(actions.HandleUnequip)
	s.handlers[domain.ActionChat] = handlers.WithPayload(actions.HandleChat)
	s.handlers[domain.ActionCreateTeam] = handlers.WithPayload(actions.HandleCreateTeam)
	s.handlers[domain.ActionJoinTeam] = handlers.WithPayload(actions.HandleJoinTeam)
	s.handlers[domain.ActionLeaveTeam] = handlers.WithEmptyPayload(actions.HandleLeaveTeam)
	s.handlers[domain.ActionUpdateTeamSettings] = handlers.WithPayload(actions.HandleUpdateTeamSettings)
	s.handlers[domain.ActionRequestToJoin] = handlers.WithPayload(actions.HandleRequestToJoin)
	s.handlers[domain.ActionResolveJoinRequest] = handlers.WithPayload(actions.HandleResolveJoinRequest)
}

// Config возвращает параметры мира
func (s *GameService) Config() config.Config {
	return s.cfg
}

// Latest - последний опубликованный снимок. Безопасно вызывать из любой горутины.
func (s *GameService) Latest() *api.GameState {
	return s.latest.Load()
}

// Submit принимает команду от транспорта. Неизвестное действие отклоняется сразу,
// остальное ставится в очередь движка.
func (s *GameService) Submit(ctx context.Context, sessionID string, cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		s.Hub.SendTo(sessionID, errorMessage("Unknown action."))
		return ErrUnknownAction
	}

	return s.enqueue(ctx, domain.InternalCommand{
		Action:  action,
		Session: sessionID,
		Payload: cmd.Payload,
	})
}

// Disconnect сообщает движку, что соединение закрыто
func (s *GameService) Disconnect(ctx context.Context, sessionID string) error {
	return s.enqueue(ctx, domain.InternalCommand{Action: domain.ActionDisconnect, Session: sessionID})
}

func (s *GameService) enqueue(ctx context.Context, cmd domain.InternalCommand) error {
	select {
	case s.commands <- cmd:
		return nil
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run - игровой цикл. Команды и тики обрабатываются в одной горутине,
// строго по очереди.
func (s *GameService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Tick())
	defer ticker.Stop()
	defer close(s.done)

	s.log.WithFields(logrus.Fields{
		"tick_ms":  s.cfg.TickMs,
		"map_size": s.cfg.MapSize,
		"objects":  len(s.World.Registry.Objects()),
	}).Info("Game loop started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Game loop stopped")
			return
		case cmd := <-s.commands:
			s.execute(cmd)
		case <-ticker.C:
			s.step()
		}
	}
}

// execute выполняет одну команду транспорта
func (s *GameService) execute(cmd domain.InternalCommand) {
	cmdLogger := s.log.WithFields(logrus.Fields{
		"session": cmd.Session,
		"action":  cmd.Action.String(),
	})

	switch cmd.Action {
	case domain.ActionCreate:
		s.createPlayer(cmd.Session)
		return
	case domain.ActionDisconnect:
		s.disconnect(cmd.Session)
		return
	}

	actor := s.World.GetPlayer(s.sessions[cmd.Session])
	if actor == nil {
		s.Hub.SendTo(cmd.Session, errorMessage("You must create a player first."))
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.Hub.SendTo(cmd.Session, errorMessage("Unknown action."))
		return
	}

	ctx := handlers.Context{
		Env:    s.newEnv(),
		Teams:  s.Teams,
		Chat:   s.Chat,
		Events: s,
		Actor:  actor,
	}

	result, err := handler(ctx, cmd.Payload)
	switch {
	case errors.Is(err, handlers.ErrNotFound):
		cmdLogger.WithError(err).Debug("Command target vanished")
		return
	case errors.Is(err, handlers.ErrMalformed):
		cmdLogger.WithError(err).Warn("Malformed payload")
		s.Hub.SendTo(cmd.Session, errorMessage("Invalid message format."))
		return
	case err != nil:
		cmdLogger.WithError(err).Debug("Command rejected")
		s.LogTo(actor.ID, err.Error())
		return
	}

	if result.Msg != "" {
		s.Log(result.Msg)
	}
	if result.Changed {
		s.publish()
	}
}

func (s *GameService) createPlayer(sessionID string) {
	if _, exists := s.sessions[sessionID]; exists {
		s.Hub.SendTo(sessionID, errorMessage("Player already created."))
		return
	}

	s.nextPlayer++
	p := systems.NewPlayer(&s.cfg, playerID(s.nextPlayer))
	s.World.Registry.Insert(p)
	s.sessions[sessionID] = p.ID
	s.owners[p.ID] = sessionID

	s.log.WithFields(logrus.Fields{"player_id": p.ID, "session": sessionID}).Info("Player created")
	s.Log("A new hero, " + p.ID + ", has joined the realm!")
	s.Hub.SendTo(sessionID, api.ServerMessage{
		Type:     api.MsgPlayerCreated,
		PlayerID: p.ID,
		Message:  "Welcome! You are " + p.ID + ".",
	})
	s.publish()
}

// disconnect: бой прекращается, команда покидается молча, игрок удаляется
func (s *GameService) disconnect(sessionID string) {
	id, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	if !ok {
		return
	}
	delete(s.owners, id)

	p := s.World.GetPlayer(id)
	if p == nil {
		return
	}

	s.Log("Player " + p.ID + " has left the game.")
	systems.StopCombat(s.World, p)
	systems.ReleaseTarget(s.World, p.ID)
	s.Teams.LeaveSilently(s.newEnv(), p)
	s.Teams.Forget(p.ID)
	s.World.Registry.Remove(p.ID)

	s.log.WithField("player_id", id).Info("Player disconnected")
	s.publish()
}

func (s *GameService) newEnv() *systems.Env {
	return systems.NewEnv(s.World, &s.cfg, s.rng, s.now(), s)
}
