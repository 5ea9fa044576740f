package domain

// InBounds проверяет, что клетка лежит на карте
func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Size && y < w.Size
}

// GetEntity ищет сущность по ID (игроки и объекты в одном пространстве имён)
func (w *GameWorld) GetEntity(id string) *Entity {
	return w.Registry.FindByID(id)
}

// GetPlayer ищет только игроков
func (w *GameWorld) GetPlayer(id string) *Entity {
	e := w.Registry.FindByID(id)
	if e == nil || !e.IsPlayer() {
		return nil
	}
	return e
}

// SiteAt возвращает площадку команды team в клетке pos
func (w *GameWorld) SiteAt(pos Position, team string) *Entity {
	cell := w.Grid.At(pos.X, pos.Y)
	if cell == nil {
		return nil
	}
	for _, o := range cell.Objects {
		if o.Site != nil && o.Team == team {
			return o
		}
	}
	return nil
}

// EnemySiteAt возвращает первую чужую площадку в клетке pos
func (w *GameWorld) EnemySiteAt(pos Position, team string) *Entity {
	cell := w.Grid.At(pos.X, pos.Y)
	if cell == nil {
		return nil
	}
	for _, o := range cell.Objects {
		if o.Site != nil && o.Team != team {
			return o
		}
	}
	return nil
}

// Reindex перестраивает сетку по текущему реестру
func (w *GameWorld) Reindex() {
	w.Grid.Rebuild(w.Registry)
}
