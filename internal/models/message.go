package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageKind tags the payload carried by an Envelope
type MessageKind string

const (
	KindJoinRoom          MessageKind = "join_room"
	KindPlayerJoined      MessageKind = "player_joined"
	KindSubmitChoice      MessageKind = "submit_choice"
	KindRoundCompleted    MessageKind = "round_completed"
	KindGameFinished      MessageKind = "game_finished"
	KindUpdateLeaderboard MessageKind = "update_leaderboard"
	KindUpdatePlayerName  MessageKind = "update_player_name"
)

// CoordinatorOnly reports whether the kind may only be applied on the coordinator
func (k MessageKind) CoordinatorOnly() bool {
	switch k {
	case KindJoinRoom, KindSubmitChoice, KindUpdateLeaderboard, KindUpdatePlayerName:
		return true
	}
	return false
}

// CoordinatorIssued reports whether the kind is only ever sent by the coordinator
func (k MessageKind) CoordinatorIssued() bool {
	switch k {
	case KindPlayerJoined, KindRoundCompleted, KindGameFinished:
		return true
	}
	return false
}

// Message is the closed set of cross-node messages.
// New kinds are added by declaring a type with the marker method below.
type Message interface {
	Kind() MessageKind
	isMessage()
}

// JoinRoom asks the coordinator to seat PlayerNode in RoomID
type JoinRoom struct {
	RoomID     string `json:"room_id"`
	PlayerNode string `json:"player_node"`
	PlayerName string `json:"player_name,omitempty"`
}

// PlayerJoined echoes the outcome of a JoinRoom back to the joining node
type PlayerJoined struct {
	RoomID     string `json:"room_id"`
	PlayerNode string `json:"player_node"`
	Success    bool   `json:"success"`
}

// SubmitChoice carries a player's hand for the current round
type SubmitChoice struct {
	RoomID     string `json:"room_id"`
	PlayerNode string `json:"player_node"`
	Choice     Choice `json:"choice"`
}

// RoundCompleted informs both players of a resolved round
type RoundCompleted struct {
	RoomID        string       `json:"room_id"`
	RoundNumber   int          `json:"round_number"`
	Player1Choice Choice       `json:"player1_choice"`
	Player2Choice Choice       `json:"player2_choice"`
	RoundWinner   string       `json:"round_winner,omitempty"`
	Outcome       RoundOutcome `json:"outcome"`
	Result        GameResult   `json:"game_result"`
}

// GameFinished informs both players that a room reached its winner
type GameFinished struct {
	RoomID      string     `json:"room_id"`
	Winner      string     `json:"winner"`
	FinalResult GameResult `json:"final_result"`

	// DedupKey identifies this completion for the receiving node
	DedupKey string `json:"dedup_key,omitempty"`
}

// UpdateLeaderboard records a game result directly on the coordinator
type UpdateLeaderboard struct {
	PlayerNode string `json:"player_node"`
	Won        bool   `json:"won"`

	// DedupKey, when set, makes the update apply at most once
	DedupKey string `json:"dedup_key,omitempty"`
}

// UpdatePlayerName replicates a directory entry to the coordinator
type UpdatePlayerName struct {
	PlayerNode string `json:"player_node"`
	PlayerName string `json:"player_name"`
}

func (JoinRoom) Kind() MessageKind          { return KindJoinRoom }
func (PlayerJoined) Kind() MessageKind      { return KindPlayerJoined }
func (SubmitChoice) Kind() MessageKind      { return KindSubmitChoice }
func (RoundCompleted) Kind() MessageKind    { return KindRoundCompleted }
func (GameFinished) Kind() MessageKind      { return KindGameFinished }
func (UpdateLeaderboard) Kind() MessageKind { return KindUpdateLeaderboard }
func (UpdatePlayerName) Kind() MessageKind  { return KindUpdatePlayerName }

func (JoinRoom) isMessage()          {}
func (PlayerJoined) isMessage()      {}
func (SubmitChoice) isMessage()      {}
func (RoundCompleted) isMessage()    {}
func (GameFinished) isMessage()      {}
func (UpdateLeaderboard) isMessage() {}
func (UpdatePlayerName) isMessage()  {}

// Envelope is the wire record exchanged between nodes
type Envelope struct {
	// ID is unique per send; redeliveries carry the same ID
	ID string `json:"id"`

	Kind MessageKind `json:"kind"`
	From string      `json:"from"`
	To   string      `json:"to"`

	// Bounced marks a delivery-failure notice returned to From.
	// Nothing but Kind is guaranteed meaningful on a bounced envelope.
	Bounced bool `json:"bounced,omitempty"`

	SentAt  time.Time       `json:"sent_at"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope wraps msg for delivery from one node to another
func NewEnvelope(id, from, to string, msg Message, sentAt time.Time) (*Envelope, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", msg.Kind(), err)
	}

	return &Envelope{
		ID:      id,
		Kind:    msg.Kind(),
		From:    from,
		To:      to,
		SentAt:  sentAt,
		Payload: payload,
	}, nil
}

// Bounce returns a copy flagged as undeliverable. From and To are kept so
// the original sender can tell which send failed.
func (e *Envelope) Bounce() *Envelope {
	bounced := *e
	bounced.Bounced = true
	return &bounced
}

// Decode unmarshals the payload into its concrete message type
func (e *Envelope) Decode() (Message, error) {
	var msg Message
	switch e.Kind {
	case KindJoinRoom:
		msg = &JoinRoom{}
	case KindPlayerJoined:
		msg = &PlayerJoined{}
	case KindSubmitChoice:
		msg = &SubmitChoice{}
	case KindRoundCompleted:
		msg = &RoundCompleted{}
	case KindGameFinished:
		msg = &GameFinished{}
	case KindUpdateLeaderboard:
		msg = &UpdateLeaderboard{}
	case KindUpdatePlayerName:
		msg = &UpdatePlayerName{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageKind, e.Kind)
	}

	if err := json.Unmarshal(e.Payload, msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", e.Kind, err)
	}

	return msg, nil
}
