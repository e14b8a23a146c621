package models

import (
	"fmt"
	"strings"
)

// Choice is a hand a player throws in a round
type Choice string

const (
	// ChoiceRock beats scissors
	ChoiceRock Choice = "rock"

	// ChoicePaper beats rock
	ChoicePaper Choice = "paper"

	// ChoiceScissors beats paper
	ChoiceScissors Choice = "scissors"
)

// RoundOutcome is the result of a round, always relative to player1
type RoundOutcome string

const (
	// RoundOutcomeWin means player1 won the round
	RoundOutcomeWin RoundOutcome = "win"

	// RoundOutcomeLose means player2 won the round
	RoundOutcomeLose RoundOutcome = "lose"

	// RoundOutcomeDraw means both players threw the same hand
	RoundOutcomeDraw RoundOutcome = "draw"
)

// Choices lists every valid choice
var Choices = []Choice{ChoiceRock, ChoicePaper, ChoiceScissors}

// ParseChoice converts a case-insensitive name into a Choice
func ParseChoice(s string) (Choice, error) {
	c := Choice(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", InvalidInputError(fmt.Sprintf("invalid choice %q", s))
	}
	return c, nil
}

// IsValid reports whether c is one of the three hands
func (c Choice) IsValid() bool {
	switch c {
	case ChoiceRock, ChoicePaper, ChoiceScissors:
		return true
	}
	return false
}

// Beats returns true if c beats other
func (c Choice) Beats(other Choice) bool {
	switch {
	case c == ChoiceRock && other == ChoiceScissors:
		return true
	case c == ChoicePaper && other == ChoiceRock:
		return true
	case c == ChoiceScissors && other == ChoicePaper:
		return true
	}
	return false
}

// Compare returns the outcome of c against other from c's point of view
func (c Choice) Compare(other Choice) RoundOutcome {
	if c == other {
		return RoundOutcomeDraw
	}
	if c.Beats(other) {
		return RoundOutcomeWin
	}
	return RoundOutcomeLose
}

// Opposite returns the same outcome seen from the other player
func (o RoundOutcome) Opposite() RoundOutcome {
	switch o {
	case RoundOutcomeWin:
		return RoundOutcomeLose
	case RoundOutcomeLose:
		return RoundOutcomeWin
	}
	return o
}
