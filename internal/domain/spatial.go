package domain

// Cell - содержимое одной клетки карты
type Cell struct {
	Players []*Entity
	Objects []*Entity
}

// Grid - индекс "кто/что в клетке". Не поддерживается инкрементально:
// Rebuild проходит по реестру целиком.
type Grid struct {
	Size  int
	cells []Cell
}

func NewGrid(size int) *Grid {
	return &Grid{Size: size, cells: make([]Cell, size*size)}
}

func (g *Grid) index(x, y int) int {
	return y*g.Size + x
}

// At возвращает клетку или nil за пределами карты
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.Size || y >= g.Size {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Rebuild раскладывает живых игроков и все объекты по клеткам
func (g *Grid) Rebuild(r *EntityRegistry) {
	for i := range g.cells {
		g.cells[i].Players = g.cells[i].Players[:0]
		g.cells[i].Objects = g.cells[i].Objects[:0]
	}
	for _, p := range r.Players() {
		if p.IsDead() {
			continue
		}
		if cell := g.At(p.Pos.X, p.Pos.Y); cell != nil {
			cell.Players = append(cell.Players, p)
		}
	}
	for _, o := range r.Objects() {
		if cell := g.At(o.Pos.X, o.Pos.Y); cell != nil {
			cell.Objects = append(cell.Objects, o)
		}
	}
}
