package api

import (
	"errors"
	"unicode/utf8"
)

const (
	MinTeamName = 3
	MaxTeamName = 15
	MaxChatText = 500
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("Target not found in the current area.")
	}
	return nil
}

func (p EquipPayload) Validate() error {
	if p.ItemIndex < 0 {
		return errors.New("itemIndex cannot be negative")
	}
	return nil
}

func (p UnequipPayload) Validate() error {
	if p.Slot == "" {
		return errors.New("slot is required")
	}
	return nil
}

func (p ChatPayload) Validate() error {
	if p.Text == "" {
		return errors.New("Message cannot be empty.")
	}
	if utf8.RuneCountInString(p.Text) > MaxChatText {
		return errors.New("Message is too long.")
	}
	return nil
}

func (p CreateTeamPayload) Validate() error {
	n := utf8.RuneCountInString(p.TeamName)
	if n < MinTeamName || n > MaxTeamName {
		return errors.New("Team name must be between 3 and 15 characters.")
	}
	return nil
}

func (p TeamPayload) Validate() error {
	if p.TeamID == "" {
		return errors.New("Team not found.")
	}
	return nil
}

func (p TeamSettingsPayload) Validate() error {
	if p.TeamID == "" {
		return errors.New("Team not found.")
	}
	return nil
}

func (p ResolveJoinPayload) Validate() error {
	if p.TeamID == "" {
		return errors.New("Team not found.")
	}
	if p.RequesterID == "" {
		return errors.New("requesterId is required")
	}
	if p.Decision != "accept" && p.Decision != "decline" {
		return errors.New("decision must be 'accept' or 'decline'")
	}
	return nil
}
