package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerSlot(t *testing.T) {
	assert.True(t, PlayerSlotOne.Valid())
	assert.True(t, PlayerSlotTwo.Valid())
	assert.False(t, PlayerSlotNone.Valid())
	assert.False(t, PlayerSlot("player3").Valid())

	assert.Equal(t, PlayerSlotTwo, PlayerSlotOne.Opponent())
	assert.Equal(t, PlayerSlotOne, PlayerSlotTwo.Opponent())
	assert.Equal(t, PlayerSlotNone, PlayerSlotNone.Opponent())
}

func TestStatKind(t *testing.T) {
	assert.True(t, StatKindAce.Valid())
	assert.True(t, StatKindWinner.Valid())
	assert.True(t, StatKindDoubleFault.Valid())
	assert.False(t, StatKind("let").Valid())

	assert.True(t, StatKindAce.AwardsPoint())
	assert.True(t, StatKindWinner.AwardsPoint())
	assert.False(t, StatKindDoubleFault.AwardsPoint())
}

func TestMatchStatsTally(t *testing.T) {
	stats := MatchStats{}
	stats.Tally(PlayerSlotTwo).Aces++
	stats.Tally(PlayerSlotTwo).DoubleFaults += 2

	assert.Equal(t, StatTally{}, stats.Player1)
	assert.Equal(t, 3, stats.Player2.Total())
	assert.Nil(t, stats.Tally(PlayerSlotNone))
}

func TestMatchStateClone(t *testing.T) {
	state := MatchState{
		Player1:   GameScore{Sets: 1},
		SetScores: []SetScore{{Player1: 6, Player2: 4}},
	}

	clone := state.Clone()
	clone.SetScores[0].Player2 = 0
	clone.Score(PlayerSlotOne).Sets = 2

	assert.Equal(t, 4, state.SetScores[0].Player2)
	assert.Equal(t, 1, state.Player1.Sets)
	assert.Nil(t, MatchState{}.Clone().SetScores)
}

func TestMatchStateIsComplete(t *testing.T) {
	assert.False(t, MatchState{}.IsComplete())
	assert.True(t, MatchState{Winner: PlayerSlotTwo}.IsComplete())
}

func TestSetScoreString(t *testing.T) {
	assert.Equal(t, "7-6", SetScore{Player1: 7, Player2: 6}.String())
}

func TestMatchRecordSlotOf(t *testing.T) {
	record := &MatchRecord{WinnerName: "Ana", LoserName: "Ben", WinnerSlot: PlayerSlotTwo}
	assert.Equal(t, PlayerSlotTwo, record.SlotOf("Ana"))
	assert.Equal(t, PlayerSlotOne, record.SlotOf("Ben"))
	assert.Equal(t, PlayerSlotNone, record.SlotOf("Cy"))

	legacy := &MatchRecord{WinnerName: "Ana", LoserName: "Ben"}
	assert.Equal(t, PlayerSlotOne, legacy.SlotOf("Ana"))
	assert.Equal(t, PlayerSlotTwo, legacy.SlotOf("Ben"))

	stats := RecordStats{Player2: PlayerRecordStats{Aces: 4}}
	assert.Equal(t, 4, stats.For(record.SlotOf("Ana")).Aces)
}

func TestMatchPlayerName(t *testing.T) {
	match := &Match{Player1Name: "Ana", Player2Name: "Ben", Status: MatchStatusInProgress}
	assert.Equal(t, "Ana", match.PlayerName(PlayerSlotOne))
	assert.Equal(t, "Ben", match.PlayerName(PlayerSlotTwo))
	assert.Empty(t, match.PlayerName(PlayerSlotNone))
	assert.True(t, match.Status.IsInProgress())
	assert.False(t, match.Status.IsCompleted())
}

func TestFormatMatchDate(t *testing.T) {
	date := time.Date(2025, 4, 19, 12, 5, 0, 0, time.Local)
	assert.Equal(t, "Apr 19, 2025 12:05", FormatMatchDate(date))
}
