package domain

// JoinPolicy - как в команду попадают новые участники
type JoinPolicy string

const (
	JoinPolicyOpen    JoinPolicy = "open"
	JoinPolicyRequest JoinPolicy = "request"
)

// Team - команда игроков. Для симуляции важен только её ID как метка владельца.
type Team struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Members     []string   `json:"members"`
	Color       string     `json:"color"`
	AdminID     string     `json:"adminId"`
	Description string     `json:"description"`
	JoinPolicy  JoinPolicy `json:"joinPolicy"`
	Requests    []string   `json:"requests"`
}

// HasMember проверяет членство
func (t *Team) HasMember(playerID string) bool {
	return containsID(t.Members, playerID)
}

// HasRequest проверяет наличие заявки
func (t *Team) HasRequest(playerID string) bool {
	return containsID(t.Requests, playerID)
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func withoutID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// RemoveMember убирает игрока из состава
func (t *Team) RemoveMember(playerID string) {
	t.Members = withoutID(t.Members, playerID)
}

// RemoveRequest убирает заявку
func (t *Team) RemoveRequest(playerID string) {
	t.Requests = withoutID(t.Requests, playerID)
}
