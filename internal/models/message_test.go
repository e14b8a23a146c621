package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	sentAt := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	msgs := []Message{
		&JoinRoom{RoomID: "r1", PlayerNode: "X", PlayerName: "Xavier"},
		&PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true},
		&SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: ChoicePaper},
		&RoundCompleted{RoomID: "r1", RoundNumber: 2, Outcome: RoundOutcomeDraw},
		&GameFinished{RoomID: "r1", Winner: "X", DedupKey: "k"},
		&UpdateLeaderboard{PlayerNode: "X", Won: true},
		&UpdatePlayerName{PlayerNode: "X", PlayerName: "Xavier"},
	}

	for _, msg := range msgs {
		t.Run(string(msg.Kind()), func(t *testing.T) {
			env, err := NewEnvelope("id-1", "X", "C", msg, sentAt)
			require.NoError(t, err)
			assert.Equal(t, msg.Kind(), env.Kind)

			decoded, err := env.Decode()
			require.NoError(t, err)
			assert.Equal(t, msg, decoded)
		})
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	env := &Envelope{ID: "id-1", Kind: "surrender", Payload: []byte(`{}`)}
	_, err := env.Decode()
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestBounceKeepsAddressing(t *testing.T) {
	env := &Envelope{ID: "id-1", Kind: KindSubmitChoice, From: "X", To: "C"}
	bounced := env.Bounce()

	assert.True(t, bounced.Bounced)
	assert.False(t, env.Bounced)
	assert.Equal(t, "X", bounced.From)
	assert.Equal(t, "C", bounced.To)
}

func TestNodeConfigRole(t *testing.T) {
	assert.Equal(t, RoleUnconfigured, NodeConfig{NodeID: "A"}.Role())
	assert.Equal(t, RoleCoordinator, NodeConfig{NodeID: "C", CoordinatorID: "C"}.Role())
	assert.Equal(t, RoleParticipant, NodeConfig{NodeID: "A", CoordinatorID: "C"}.Role())
	assert.True(t, NodeConfig{NodeID: "C", CoordinatorID: "C"}.IsCoordinator())
}

func TestKindSenders(t *testing.T) {
	for _, k := range []MessageKind{KindPlayerJoined, KindRoundCompleted, KindGameFinished} {
		assert.True(t, k.CoordinatorIssued(), "kind %s", k)
		assert.False(t, k.CoordinatorOnly(), "kind %s", k)
	}
	for _, k := range []MessageKind{KindJoinRoom, KindSubmitChoice, KindUpdateLeaderboard, KindUpdatePlayerName} {
		assert.False(t, k.CoordinatorIssued(), "kind %s", k)
	}
}
