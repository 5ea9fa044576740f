package engine

import (
	"time"

	"realm-server/internal/domain"
	"realm-server/pkg/api"
)

// publish перестраивает индекс, сохраняет снимок и рассылает его всем подписчикам.
func (s *GameService) publish() {
	s.World.Reindex()
	state := s.buildState()
	s.latest.Store(state)
	s.Hub.Broadcast(api.ServerMessage{Type: api.MsgGameState, State: state})
}

// buildState создает "снимок" мира. Все срезы и карты копируются:
// снимок уходит в другие горутины, а мир продолжает меняться.
func (s *GameService) buildState() *api.GameState {
	players := s.World.Registry.Players()
	objects := s.World.Registry.Objects()

	state := &api.GameState{
		Tick:         s.tick,
		MapSize:      s.World.Size,
		Players:      make([]api.PlayerView, 0, len(players)),
		Objects:      make([]api.ObjectView, 0, len(objects)),
		Teams:        make(map[string]api.TeamView, s.Teams.Len()),
		ChatMessages: make([]api.ChatView, 0),
		World:        buildCells(s.World.Grid),
	}

	for _, p := range players {
		state.Players = append(state.Players, toPlayerView(p))
	}
	for _, o := range objects {
		state.Objects = append(state.Objects, toObjectView(o))
	}
	for _, t := range s.Teams.All() {
		state.Teams[t.ID] = toTeamView(t)
	}
	for _, m := range s.Chat.Messages() {
		state.ChatMessages = append(state.ChatMessages, chatView(m))
	}

	return state
}

func buildCells(g *domain.Grid) [][]api.CellView {
	rows := make([][]api.CellView, g.Size)
	for y := 0; y < g.Size; y++ {
		rows[y] = make([]api.CellView, g.Size)
		for x := 0; x < g.Size; x++ {
			cell := g.At(x, y)
			view := api.CellView{
				Players: make([]string, 0, len(cell.Players)),
				Objects: make([]string, 0, len(cell.Objects)),
			}
			for _, p := range cell.Players {
				view.Players = append(view.Players, p.ID)
			}
			for _, o := range cell.Objects {
				view.Objects = append(view.Objects, o.ID)
			}
			rows[y][x] = view
		}
	}
	return rows
}

func toStatsView(st *domain.StatsComponent) api.StatsView {
	if st == nil {
		return api.StatsView{}
	}
	return api.StatsView{
		HP:       st.HP,
		MaxHP:    st.MaxHP,
		Dmg:      st.Dmg,
		Speed:    st.Speed,
		Critical: st.Critical,
		Dodge:    st.Dodge,
		SelfDmg:  st.SelfDmg,
	}
}

func toItemView(item *domain.Item) *api.ItemView {
	if item == nil {
		return nil
	}
	view := &api.ItemView{Name: item.Name, Slot: item.Slot, Quantity: item.Quantity}
	if item.Stats != nil {
		view.Stats = &api.ItemStatsView{
			MaxHP:    item.Stats.MaxHP,
			Dmg:      item.Stats.Dmg,
			Speed:    item.Stats.Speed,
			Critical: item.Stats.Critical,
			Dodge:    item.Stats.Dodge,
		}
	}
	return view
}

// toPlayerView конвертирует игрока в DTO
func toPlayerView(e *domain.Entity) api.PlayerView {
	pc := e.Player
	view := api.PlayerView{
		ID:             e.ID,
		Type:           string(e.Type),
		X:              e.Pos.X,
		Y:              e.Pos.Y,
		Team:           e.Team,
		BaseStats:      toStatsView(&pc.BaseStats),
		Stats:          toStatsView(e.Stats),
		Inventory:      make([]api.ItemView, 0, len(pc.Inventory)),
		Equipment:      make(map[string]*api.ItemView, len(domain.EquipmentSlots)),
		Skills:         make(map[string]api.SkillView, len(pc.Skills)),
		Attacking:      pc.Attacking,
		AttackCooldown: pc.AttackCooldown,
		IsDead:         pc.IsDead,
	}

	for _, item := range pc.Inventory {
		view.Inventory = append(view.Inventory, *toItemView(item))
	}
	// Пустые слоты передаются как null, чтобы клиент видел полный набор слотов
	for _, slot := range domain.EquipmentSlots {
		view.Equipment[slot] = toItemView(pc.Equipment[slot])
	}
	for name, skill := range pc.Skills {
		view.Skills[name] = api.SkillView{Level: skill.Level, Exp: skill.Exp}
	}

	return view
}

// toObjectView конвертирует моба, площадку или осадную машину в DTO
func toObjectView(e *domain.Entity) api.ObjectView {
	view := api.ObjectView{
		ID:    e.ID,
		Type:  string(e.Type),
		Name:  e.Name,
		X:     e.Pos.X,
		Y:     e.Pos.Y,
		Team:  e.Team,
		Stats: toStatsView(e.Stats),
	}

	switch {
	case e.Mob != nil:
		m := e.Mob
		view.Level = m.Level
		view.Attackers = m.Attackers.IDs()
		view.MaxAttackers = m.Attackers.Capacity()
		view.TemplateID = m.TemplateID
		view.Weakness = m.Weakness
		view.RespawnUntil = unixMillis(m.RespawnUntil)
		view.AttackCooldown = m.AttackCooldown
	case e.Site != nil:
		st := e.Site
		view.Level = st.Level
		view.Attackers = st.Attackers.IDs()
		view.MaxAttackers = st.Attackers.Capacity()
		view.Materials = &api.Materials{Bricks: st.Bricks}
		view.RequiredMaterials = &api.Materials{Bricks: st.RequiredBricks}
		view.ConstructionCompleteUntil = unixMillis(st.CompleteAt)
	case e.Siege != nil:
		view.TargetID = e.Siege.TargetID
		view.AttackCooldown = e.Siege.AttackCooldown
	}

	return view
}

func toTeamView(t *domain.Team) api.TeamView {
	return api.TeamView{
		ID:          t.ID,
		Name:        t.Name,
		Members:     append([]string{}, t.Members...),
		Color:       t.Color,
		AdminID:     t.AdminID,
		Description: t.Description,
		JoinPolicy:  string(t.JoinPolicy),
		Requests:    append([]string{}, t.Requests...),
	}
}

func chatView(m domain.ChatMessage) api.ChatView {
	return api.ChatView{
		Channel:    m.Channel,
		SenderID:   m.SenderID,
		SenderTeam: m.SenderTeam,
		Text:       m.Text,
		Timestamp:  m.Timestamp,
		Location:   api.Location{X: m.Location.X, Y: m.Location.Y},
		TargetID:   m.TargetID,
	}
}

// unixMillis - ноль для пустого времени
func unixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
