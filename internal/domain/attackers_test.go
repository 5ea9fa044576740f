package domain

import "testing"

func TestAttackerSet_Capacity(t *testing.T) {
	s := NewAttackerSet(2)

	if !s.Add("p1") || !s.Add("p2") {
		t.Fatal("First two ids should fit")
	}
	if s.Add("p3") {
		t.Error("Third id must be rejected when full")
	}
	if !s.Add("p1") {
		t.Error("Re-adding an existing id is a no-op success")
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 attackers, got %d", s.Len())
	}
}

func TestAttackerSet_RemoveAndRetain(t *testing.T) {
	s := NewAttackerSet(5)
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		s.Add(id)
	}

	s.Remove("p2")
	if got := s.IDs(); len(got) != 3 || got[0] != "p1" || got[1] != "p3" {
		t.Errorf("Remove should keep order, got %v", got)
	}

	dropped := s.Retain(func(id string) bool { return id != "p3" })
	if len(dropped) != 1 || dropped[0] != "p3" {
		t.Errorf("Expected p3 dropped, got %v", dropped)
	}
	if s.Contains("p3") || !s.Contains("p4") {
		t.Error("Retain kept the wrong ids")
	}
}

func TestPlayerComponent_Stacks(t *testing.T) {
	p := &PlayerComponent{Inventory: []*Item{{Name: "Rusty Sword", Slot: SlotHand}}}

	p.AddStack(ItemBrick, 3)
	p.AddStack(ItemBrick, 2)
	if p.CountOf(ItemBrick) != 5 || len(p.Inventory) != 2 {
		t.Fatalf("Bricks should stack into one entry, got %d in %d slots", p.CountOf(ItemBrick), len(p.Inventory))
	}

	if p.TakeStack(ItemBrick, 6) {
		t.Error("Taking more than owned must fail")
	}
	if !p.TakeStack(ItemBrick, 5) {
		t.Error("Taking the whole stack should succeed")
	}
	if p.FindStack(ItemBrick) != nil || len(p.Inventory) != 1 {
		t.Error("Empty stack should be removed from inventory")
	}
}

func TestStatsComponent_TakeDamage(t *testing.T) {
	s := &StatsComponent{HP: 10, MaxHP: 10}

	if s.TakeDamage(2.5) {
		t.Error("Target should survive 2.5 damage")
	}
	if s.HP != 7.5 {
		t.Errorf("Damage must not be rounded, hp = %v", s.HP)
	}
	if !s.TakeDamage(100) || s.HP != 0 {
		t.Errorf("Overkill should clamp hp to 0, got %v", s.HP)
	}
}

func TestStatsComponent_ClampHP(t *testing.T) {
	s := StatsComponent{HP: 150, MaxHP: 101}
	s.ClampHP()
	if s.HP != 101 {
		t.Errorf("HP above max must clamp to max, got %v", s.HP)
	}

	s.HP = -3
	s.ClampHP()
	if s.HP != 0 {
		t.Errorf("Negative HP must clamp to 0, got %v", s.HP)
	}
}
