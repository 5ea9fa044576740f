package domain

// TakeDamage снимает hp без округления. hp не опускается ниже нуля.
// Возвращает true, если запас hp исчерпан.
func (s *StatsComponent) TakeDamage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		return true
	}
	return false
}

// Refill полностью восстанавливает hp
func (s *StatsComponent) Refill() {
	s.HP = s.MaxHP
}

// ClampHP возвращает hp в диапазон [0, MaxHP] после пересчёта максимума
func (s *StatsComponent) ClampHP() {
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.HP < 0 {
		s.HP = 0
	}
}
