package models

import (
	"time"
)

// WinsToFinish is the number of round wins that ends a game
const WinsToFinish = 3

// RoundHistory is one resolved round of a room
type RoundHistory struct {
	// RoundNumber is the room's round number when the round resolved
	RoundNumber int `json:"round_number"`

	Player1Choice Choice       `json:"player1_choice"`
	Player2Choice Choice       `json:"player2_choice"`
	Outcome       RoundOutcome `json:"outcome"`

	// Winner is the node that won the round, empty on a draw
	Winner string `json:"winner,omitempty"`
}

// GameResult is the running tally of a room
type GameResult struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
	Draws       int `json:"draws"`

	// Winner is the node that reached WinsToFinish, empty while unfinished
	Winner string `json:"winner,omitempty"`

	IsFinished bool `json:"is_finished"`
}

// Room is one two-player match hosted by the coordinator
type Room struct {
	// ID is the unique identifier for the room
	ID string `json:"room_id"`

	// Player1 and Player2 are node identities; empty means the slot is open
	Player1 string `json:"player1,omitempty"`
	Player2 string `json:"player2,omitempty"`

	Player1Name string `json:"player1_name,omitempty"`
	Player2Name string `json:"player2_name,omitempty"`

	// Pending choices for the current round
	Player1Choice *Choice `json:"player1_choice,omitempty"`
	Player2Choice *Choice `json:"player2_choice,omitempty"`

	// RoundNumber is the current 1-based round
	RoundNumber int `json:"round_number"`

	Result       GameResult     `json:"game_result"`
	RoundHistory []RoundHistory `json:"round_history"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"created_at"`

	// Private rooms are not discoverable and do not affect the leaderboard
	Private bool `json:"private"`
}

// NewRoom returns an empty room at round one
func NewRoom(id string, createdAt time.Time, private bool) *Room {
	return &Room{
		ID:           id,
		RoundNumber:  1,
		RoundHistory: []RoundHistory{},
		CreatedAt:    createdAt,
		Private:      private,
	}
}

// IsFull reports whether both slots are taken
func (r *Room) IsFull() bool {
	return r.Player1 != "" && r.Player2 != ""
}

// IsDiscoverable reports whether the room belongs in the available room list
func (r *Room) IsDiscoverable() bool {
	return !r.Private && !r.IsFull() && !r.Result.IsFinished
}

// CanJoin reports whether nodeID may take an open slot
func (r *Room) CanJoin(nodeID string) bool {
	if r.Result.IsFinished || nodeID == "" {
		return false
	}
	if r.Player1 == nodeID || r.Player2 == nodeID {
		return false
	}
	return !r.IsFull()
}

// AddPlayer fills the first open slot, returning false if the node cannot join
func (r *Room) AddPlayer(nodeID, name string) bool {
	if !r.CanJoin(nodeID) {
		return false
	}

	if r.Player1 == "" {
		r.Player1 = nodeID
		r.Player1Name = name
	} else {
		r.Player2 = nodeID
		r.Player2Name = name
	}

	return true
}

// PlayerNumber returns 1 or 2 for an occupying node and 0 otherwise
func (r *Room) PlayerNumber(nodeID string) int {
	switch {
	case nodeID == "":
		return 0
	case r.Player1 == nodeID:
		return 1
	case r.Player2 == nodeID:
		return 2
	}
	return 0
}

// Players returns the occupying node identities in slot order
func (r *Room) Players() []string {
	players := make([]string, 0, 2)
	if r.Player1 != "" {
		players = append(players, r.Player1)
	}
	if r.Player2 != "" {
		players = append(players, r.Player2)
	}
	return players
}

// SetChoice records a pending choice for nodeID's slot
func (r *Room) SetChoice(nodeID string, choice Choice) bool {
	if r.Result.IsFinished {
		return false
	}

	c := choice
	switch r.PlayerNumber(nodeID) {
	case 1:
		r.Player1Choice = &c
	case 2:
		r.Player2Choice = &c
	default:
		return false
	}

	return true
}

// BothPlayersChose reports whether the current round can be resolved
func (r *Room) BothPlayersChose() bool {
	return r.Player1Choice != nil && r.Player2Choice != nil
}

// ResolveRound compares the pending choices, records the round and updates
// the tally. It returns nil if either choice is missing.
func (r *Room) ResolveRound() *RoundHistory {
	if !r.BothPlayersChose() {
		return nil
	}

	choice1, choice2 := *r.Player1Choice, *r.Player2Choice
	outcome := choice1.Compare(choice2)

	round := RoundHistory{
		RoundNumber:   r.RoundNumber,
		Player1Choice: choice1,
		Player2Choice: choice2,
		Outcome:       outcome,
	}

	switch outcome {
	case RoundOutcomeWin:
		round.Winner = r.Player1
		r.Result.Player1Wins++
		if r.Result.Player1Wins >= WinsToFinish {
			r.Result.Winner = r.Player1
			r.Result.IsFinished = true
		}
	case RoundOutcomeLose:
		round.Winner = r.Player2
		r.Result.Player2Wins++
		if r.Result.Player2Wins >= WinsToFinish {
			r.Result.Winner = r.Player2
			r.Result.IsFinished = true
		}
	default:
		r.Result.Draws++
	}

	r.RoundHistory = append(r.RoundHistory, round)

	r.Player1Choice = nil
	r.Player2Choice = nil

	if !r.Result.IsFinished {
		r.RoundNumber++
	}

	return &round
}

// CompletionKey identifies one player's completion of this room instance.
// CreatedAt separates rooms that reuse an id after a reset.
func (r *Room) CompletionKey(nodeID string) string {
	return r.ID + ":" + r.CreatedAt.UTC().Format(time.RFC3339Nano) + ":" + nodeID
}
