package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameWorld - квадратная карта Size x Size, единый реестр сущностей и сетка-индекс.
type GameWorld struct {
	Size     int
	Registry *EntityRegistry

	// Grid перестраивается целиком перед каждой рассылкой состояния
	Grid *Grid
}

func NewGameWorld(size int) *GameWorld {
	return &GameWorld{
		Size:     size,
		Registry: NewEntityRegistry(),
		Grid:     NewGrid(size),
	}
}
