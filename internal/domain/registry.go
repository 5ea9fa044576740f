package domain

import "fmt"

// EntityRegistry владеет всеми сущностями.
// Игроки и объекты хранятся раздельно (порядок вставки), поиск - через общий индекс id.
type EntityRegistry struct {
	byID    map[string]*Entity
	players []*Entity
	objects []*Entity
}

func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		byID:    make(map[string]*Entity),
		players: make([]*Entity, 0),
		objects: make([]*Entity, 0),
	}
}

func (r *EntityRegistry) FindByID(id string) *Entity {
	return r.byID[id]
}

// Insert добавляет сущность. Коллизия id - логическая ошибка, а не штатная ситуация.
func (r *EntityRegistry) Insert(e *Entity) {
	if _, exists := r.byID[e.ID]; exists {
		panic(fmt.Sprintf("registry: duplicate entity id %q", e.ID))
	}
	r.byID[e.ID] = e
	if e.IsPlayer() {
		r.players = append(r.players, e)
	} else {
		r.objects = append(r.objects, e)
	}
}

// Remove удаляет одну сущность
func (r *EntityRegistry) Remove(id string) bool {
	return r.RemoveAll(map[string]struct{}{id: {}}) > 0
}

// RemoveAll удаляет пачку сущностей за один проход.
// Срезы пересобираются заново, поэтому идущая по старому срезу итерация не ломается.
func (r *EntityRegistry) RemoveAll(ids map[string]struct{}) int {
	removed := 0
	for id := range ids {
		if _, ok := r.byID[id]; ok {
			delete(r.byID, id)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}
	r.players = filterOut(r.players, ids)
	r.objects = filterOut(r.objects, ids)
	return removed
}

func filterOut(src []*Entity, ids map[string]struct{}) []*Entity {
	out := make([]*Entity, 0, len(src))
	for _, e := range src {
		if _, drop := ids[e.ID]; !drop {
			out = append(out, e)
		}
	}
	return out
}

// Players - игроки в порядке подключения. Срез нельзя модифицировать.
func (r *EntityRegistry) Players() []*Entity { return r.players }

// Objects - мобы, площадки и осадные машины в порядке создания
func (r *EntityRegistry) Objects() []*Entity { return r.objects }

// All - сначала игроки, затем объекты
func (r *EntityRegistry) All() []*Entity {
	all := make([]*Entity, 0, len(r.players)+len(r.objects))
	all = append(all, r.players...)
	return append(all, r.objects...)
}

func (r *EntityRegistry) Len() int { return len(r.byID) }
