package systems

import (
	"errors"
	"fmt"

	"realm-server/internal/domain"
)

var (
	ErrNotEquippable = errors.New("That item cannot be equipped.")
	ErrSlotEmpty     = errors.New("Nothing is equipped in that slot.")
)

// --- EQUIP ---

// Equip надевает предмет из инвентаря. Прежний предмет слота возвращается в инвентарь.
func Equip(actor *domain.Entity, index int) (string, error) {
	p := actor.Player
	if index < 0 || index >= len(p.Inventory) {
		return "", ErrNotEquippable
	}
	item := p.Inventory[index]
	if item.Slot == "" {
		return "", ErrNotEquippable
	}

	p.RemoveAt(index)
	if old := p.Equipment[item.Slot]; old != nil {
		p.Inventory = append(p.Inventory, old)
	}
	p.Equipment[item.Slot] = item
	ApplyPlayerStats(actor)

	return fmt.Sprintf("%s equipped %s.", actor.ID, item.Name), nil
}

// --- UNEQUIP ---

func Unequip(actor *domain.Entity, slot string) (string, error) {
	p := actor.Player
	item := p.Equipment[slot]
	if item == nil {
		return "", ErrSlotEmpty
	}

	p.Inventory = append(p.Inventory, item)
	p.Equipment[slot] = nil
	ApplyPlayerStats(actor)

	return fmt.Sprintf("%s unequipped %s.", actor.ID, item.Name), nil
}
