package domain

import "encoding/json"

// AttackerSet - упорядоченное множество id игроков, атакующих цель.
// Вместимость одинакова для всех целей и задаётся конфигом.
type AttackerSet struct {
	ids      []string
	capacity int
}

func NewAttackerSet(capacity int) *AttackerSet {
	return &AttackerSet{ids: make([]string, 0, capacity), capacity: capacity}
}

func (s *AttackerSet) Len() int      { return len(s.ids) }
func (s *AttackerSet) Capacity() int { return s.capacity }

// Full - мест больше нет
func (s *AttackerSet) Full() bool {
	return len(s.ids) >= s.capacity
}

func (s *AttackerSet) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Add добавляет id. Повторное добавление - no-op (true).
// Если мест нет, возвращает false.
func (s *AttackerSet) Add(id string) bool {
	if s.Contains(id) {
		return true
	}
	if s.Full() {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove удаляет id с сохранением порядка остальных
func (s *AttackerSet) Remove(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// At возвращает id по позиции
func (s *AttackerSet) At(i int) string {
	return s.ids[i]
}

// IDs возвращает копию списка
func (s *AttackerSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Retain оставляет только id, для которых keep вернул true. Возвращает выброшенные.
func (s *AttackerSet) Retain(keep func(id string) bool) []string {
	kept := s.ids[:0]
	var dropped []string
	for _, id := range s.ids {
		if keep(id) {
			kept = append(kept, id)
		} else {
			dropped = append(dropped, id)
		}
	}
	s.ids = kept
	return dropped
}

func (s *AttackerSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}
