package teams

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"realm-server/internal/domain"
	"realm-server/internal/systems"
	"realm-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const MaxDescription = 100

var (
	ErrTeamNotFound     = errors.New("Team not found.")
	ErrNotInTeam        = errors.New("You are not in a team.")
	ErrNotAdmin         = errors.New("You are not the admin of this team.")
	ErrRequestRequired  = errors.New("This team requires a request to join.")
	ErrAlreadyMember    = errors.New("You are already in this team.")
	ErrDuplicateRequest = errors.New("You have already sent a request or are a member.")
	ErrNoSuchRequest    = errors.New("There is no pending request from that player.")
)

// Registry - таблица команд. Меняется только из горутины движка.
type Registry struct {
	teams     map[string]*domain.Team
	order     []string
	colors    []string
	nextColor int
}

func NewRegistry(colors []string) *Registry {
	return &Registry{
		teams:  make(map[string]*domain.Team),
		colors: colors,
	}
}

func (r *Registry) Get(id string) *domain.Team {
	return r.teams[id]
}

// All возвращает команды в порядке создания
func (r *Registry) All() []*domain.Team {
	out := make([]*domain.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.teams)
}

// Create основывает команду; основатель вступает в неё и становится админом
func (r *Registry) Create(env *systems.Env, founder *domain.Entity, name string) (*domain.Team, error) {
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("A team named '%s' already exists.", name)
		}
	}

	t := &domain.Team{
		ID:         "team_" + uuid.NewString()[:8],
		Name:       name,
		Members:    []string{},
		Color:      r.colors[r.nextColor%len(r.colors)],
		AdminID:    founder.ID,
		JoinPolicy: domain.JoinPolicyOpen,
		Requests:   []string{},
	}
	r.nextColor++
	r.teams[t.ID] = t
	r.order = append(r.order, t.ID)

	logger.Log.WithFields(logrus.Fields{
		"component": "teams",
		"team_id":   t.ID,
		"founder":   founder.ID,
	}).Info("Team created.")

	env.Notify.Log(fmt.Sprintf("Team '%s' has been founded by %s!", name, founder.ID))
	r.join(env, founder, t)
	return t, nil
}

// Join вступает в открытую команду, молча покидая текущую
func (r *Registry) Join(env *systems.Env, p *domain.Entity, teamID string) error {
	t := r.teams[teamID]
	if t == nil {
		return ErrTeamNotFound
	}
	if p.Team == teamID {
		return ErrAlreadyMember
	}
	if t.JoinPolicy == domain.JoinPolicyRequest {
		return ErrRequestRequired
	}
	r.join(env, p, t)
	return nil
}

func (r *Registry) join(env *systems.Env, p *domain.Entity, t *domain.Team) {
	if p.Team != "" {
		r.LeaveSilently(env, p)
	}
	p.Team = t.ID
	t.Members = append(t.Members, p.ID)
	t.RemoveRequest(p.ID)
	env.Notify.Log(fmt.Sprintf("%s has joined team '%s'.", p.ID, t.Name))
}

// Leave выводит игрока из команды по его команде. Админство переходит к первому участнику,
// опустевшая команда распускается.
func (r *Registry) Leave(env *systems.Env, p *domain.Entity) error {
	t := r.teams[p.Team]
	if p.Team == "" || t == nil {
		p.Team = ""
		return ErrNotInTeam
	}
	env.Notify.Log(fmt.Sprintf("%s has left team '%s'.", p.ID, t.Name))
	r.detach(env, p, t)
	return nil
}

// LeaveSilently - уход без сообщения об уходе (переход в другую команду, отключение).
// Игрок без команды просто остаётся без команды.
func (r *Registry) LeaveSilently(env *systems.Env, p *domain.Entity) {
	t := r.teams[p.Team]
	if t == nil {
		p.Team = ""
		return
	}
	r.detach(env, p, t)
}

func (r *Registry) detach(env *systems.Env, p *domain.Entity, t *domain.Team) {
	t.RemoveMember(p.ID)
	p.Team = ""

	switch {
	case len(t.Members) == 0:
		r.disband(t)
		env.Notify.Log(fmt.Sprintf("Team '%s' has been disbanded.", t.Name))
	case t.AdminID == p.ID:
		t.AdminID = t.Members[0]
		env.Notify.Log(fmt.Sprintf("%s is now the admin of team '%s'.", t.AdminID, t.Name))
	}
}

func (r *Registry) disband(t *domain.Team) {
	delete(r.teams, t.ID)
	for i, id := range r.order {
		if id == t.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UpdateSettings меняет описание (до 100 символов) и политику вступления
func (r *Registry) UpdateSettings(env *systems.Env, admin *domain.Entity, teamID, description string, policy domain.JoinPolicy) error {
	t := r.teams[teamID]
	if t == nil {
		return ErrTeamNotFound
	}
	if t.AdminID != admin.ID {
		return ErrNotAdmin
	}

	if utf8.RuneCountInString(description) > MaxDescription {
		description = string([]rune(description)[:MaxDescription])
	}
	t.Description = description
	if policy == domain.JoinPolicyRequest {
		t.JoinPolicy = domain.JoinPolicyRequest
	} else {
		t.JoinPolicy = domain.JoinPolicyOpen
	}

	env.Notify.LogTo(admin.ID, fmt.Sprintf("Team '%s' settings have been updated.", t.Name))
	return nil
}

// RequestToJoin ставит заявку в очередь команды
func (r *Registry) RequestToJoin(env *systems.Env, p *domain.Entity, teamID string) error {
	t := r.teams[teamID]
	if t == nil {
		return ErrTeamNotFound
	}
	if t.HasRequest(p.ID) || t.HasMember(p.ID) {
		return ErrDuplicateRequest
	}

	t.Requests = append(t.Requests, p.ID)
	env.Notify.LogTo(p.ID, fmt.Sprintf("Your request to join '%s' has been sent.", t.Name))
	return nil
}

// ResolveRequest - решение админа по заявке. Принятый игрок вступает
// независимо от политики команды.
func (r *Registry) ResolveRequest(env *systems.Env, admin *domain.Entity, teamID, requesterID string, accept bool) error {
	t := r.teams[teamID]
	if t == nil {
		return ErrTeamNotFound
	}
	if t.AdminID != admin.ID {
		return ErrNotAdmin
	}
	if !t.HasRequest(requesterID) {
		return ErrNoSuchRequest
	}
	t.RemoveRequest(requesterID)

	requester := env.World.GetPlayer(requesterID)
	if requester == nil {
		return nil
	}
	if !accept {
		env.Notify.LogTo(requesterID, fmt.Sprintf("Your request to join '%s' was declined.", t.Name))
		return nil
	}
	env.Notify.LogTo(requesterID, fmt.Sprintf("Your request to join '%s' was accepted.", t.Name))
	r.join(env, requester, t)
	return nil
}

// Forget убирает заявки игрока из всех команд (при отключении)
func (r *Registry) Forget(playerID string) {
	for _, t := range r.teams {
		t.RemoveRequest(playerID)
	}
}
