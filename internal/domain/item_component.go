package domain

// ItemStats - прибавки к характеристикам от экипированного предмета
type ItemStats struct {
	MaxHP    float64 `json:"maxHp,omitempty"`
	Dmg      float64 `json:"dmg,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Critical float64 `json:"critical,omitempty"`
	Dodge    float64 `json:"dodge,omitempty"`
}

// Item - предмет в инвентаре или в слоте.
// Предметы без слота (материалы, трофеи) складываются в стак по имени.
type Item struct {
	Name     string     `json:"name"`
	Slot     string     `json:"slot,omitempty"`
	Stats    *ItemStats `json:"stats,omitempty"`
	Quantity int        `json:"quantity,omitempty"`
}

// Stackable - предмет складывается по имени
func (i *Item) Stackable() bool {
	return i.Slot == ""
}

// Clone делает глубокую копию (шаблоны стартового инвентаря не должны делиться указателями)
func (i *Item) Clone() *Item {
	c := *i
	if i.Stats != nil {
		stats := *i.Stats
		c.Stats = &stats
	}
	return &c
}

// FindStack ищет стак по имени
func (p *PlayerComponent) FindStack(name string) *Item {
	for _, item := range p.Inventory {
		if item.Stackable() && item.Name == name {
			return item
		}
	}
	return nil
}

// CountOf возвращает количество предметов в стаке
func (p *PlayerComponent) CountOf(name string) int {
	if item := p.FindStack(name); item != nil {
		return item.Quantity
	}
	return 0
}

// AddStack докладывает предметы в существующий стак или создаёт новый
func (p *PlayerComponent) AddStack(name string, quantity int) {
	if quantity <= 0 {
		return
	}
	if item := p.FindStack(name); item != nil {
		item.Quantity += quantity
		return
	}
	p.Inventory = append(p.Inventory, &Item{Name: name, Quantity: quantity})
}

// TakeStack забирает quantity предметов. Пустой стак удаляется из инвентаря.
// Возвращает false (ничего не меняя), если предметов не хватает.
func (p *PlayerComponent) TakeStack(name string, quantity int) bool {
	item := p.FindStack(name)
	if item == nil || item.Quantity < quantity {
		return false
	}
	item.Quantity -= quantity
	if item.Quantity <= 0 {
		p.removeItem(item)
	}
	return true
}

// RemoveAt вынимает предмет по индексу инвентаря
func (p *PlayerComponent) RemoveAt(index int) *Item {
	if index < 0 || index >= len(p.Inventory) {
		return nil
	}
	item := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return item
}

func (p *PlayerComponent) removeItem(target *Item) {
	for i, item := range p.Inventory {
		if item == target {
			p.RemoveAt(i)
			return
		}
	}
}
