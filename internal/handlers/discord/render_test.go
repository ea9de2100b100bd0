package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch() *models.Match {
	return &models.Match{
		ID:          "match-1",
		ChannelID:   "channel-1",
		Player1Name: "Ana",
		Player2Name: "Ben",
		Status:      models.MatchStatusInProgress,
		State: models.MatchState{
			Player1:   models.GameScore{Points: 3, Games: 2, Sets: 1},
			Player2:   models.GameScore{Points: 4, Games: 1},
			SetScores: []models.SetScore{{Player1: 6, Player2: 3}},
		},
		Stats: models.MatchStats{
			Player1: models.StatTally{Aces: 2, Winners: 5},
			Player2: models.StatTally{DoubleFaults: 1},
		},
	}
}

func TestButtonIDRoundTrip(t *testing.T) {
	for _, action := range []string{ActionPoint, ActionAce, ActionWinner, ActionDoubleFault} {
		for _, slot := range []models.PlayerSlot{models.PlayerSlotOne, models.PlayerSlotTwo} {
			gotAction, gotSlot, ok := parseButtonID(buttonID(action, slot))
			require.True(t, ok, "%s %s", action, slot)
			assert.Equal(t, action, gotAction)
			assert.Equal(t, slot, gotSlot)
		}
	}

	action, slot, ok := parseButtonID(buttonID(ActionRematch, models.PlayerSlotNone))
	require.True(t, ok)
	assert.Equal(t, ActionRematch, action)
	assert.Equal(t, models.PlayerSlotNone, slot)
}

func TestParseButtonID_Rejects(t *testing.T) {
	for _, customID := range []string{"", "point", "point:player3", "lob:player1", "join_game"} {
		_, _, ok := parseButtonID(customID)
		assert.False(t, ok, customID)
	}
}

func TestAceButtonActionIsAStatKind(t *testing.T) {
	// Stat buttons pass their action straight through as the stat kind
	assert.True(t, models.StatKind(ActionAce).Valid())
	assert.True(t, models.StatKind(ActionWinner).Valid())
	assert.True(t, models.StatKind(ActionDoubleFault).Valid())
}

func TestRenderScoreboard_InProgress(t *testing.T) {
	embed := renderScoreboard(testMatch())

	assert.Equal(t, "🎾 Ana vs Ben", embed.Title)
	assert.Equal(t, "In progress", embed.Description)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Ana", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "Points **40**")
	assert.Contains(t, embed.Fields[0].Value, "Aces 2 · Winners 5 · Double faults 0")
	assert.Contains(t, embed.Fields[1].Value, "Points **Ad**")
	assert.Equal(t, "6-3", embed.Fields[2].Value)
}

func TestRenderScoreboard_Tiebreak(t *testing.T) {
	match := testMatch()
	match.State = models.MatchState{
		Player1:    models.GameScore{Games: 6, TiebreakPoints: 5},
		Player2:    models.GameScore{Games: 6, TiebreakPoints: 3},
		IsTiebreak: true,
	}

	embed := renderScoreboard(match)

	assert.Equal(t, "Tiebreak", embed.Description)
	assert.Contains(t, embed.Fields[0].Value, "Tiebreak **5**")
	assert.Contains(t, embed.Fields[1].Value, "Tiebreak **3**")
	assert.Len(t, embed.Fields, 2)
}

func TestRenderScoreboard_Complete(t *testing.T) {
	match := testMatch()
	match.State.Winner = models.PlayerSlotTwo

	embed := renderScoreboard(match)

	assert.Equal(t, "🏆 Ben wins the match!", embed.Description)
}

func TestScoreboardComponents(t *testing.T) {
	match := testMatch()

	rows := scoreboardComponents(match)
	require.Len(t, rows, 2)

	row, ok := rows[1].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 4)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "Point Ben", button.Label)
	assert.Equal(t, "point:player2", button.CustomID)

	match.State.Winner = models.PlayerSlotOne
	rows = scoreboardComponents(match)
	require.Len(t, rows, 1)
	row = rows[0].(discordgo.ActionsRow)
	assert.Equal(t, ActionRematch, row.Components[0].(discordgo.Button).CustomID)
}

func TestRenderHistory(t *testing.T) {
	embed := renderHistory(nil)
	assert.Equal(t, "No matches recorded yet.", embed.Description)

	record := &models.MatchRecord{
		ID:         1745064000000,
		Date:       time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
		WinnerName: "Ben",
		LoserName:  "Ana",
		WinnerSlot: models.PlayerSlotTwo,
		Score: models.MatchState{
			SetScores: []models.SetScore{{Player1: 4, Player2: 6}, {Player1: 2, Player2: 6}},
		},
		Stats: models.RecordStats{
			Player1: models.PlayerRecordStats{Aces: 1, Winners: 1, WinningPercentage: 25},
			Player2: models.PlayerRecordStats{Aces: 2, Winners: 2, WinningPercentage: 50},
		},
	}

	embed = renderHistory([]*models.MatchRecord{record})

	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "#1745064000000 · "+models.FormatMatchDate(record.Date), embed.Fields[0].Name)
	assert.Equal(t, "**Ben** def. Ana 4-6, 2-6\nWinners 50% vs 25% · Aces 2 vs 1", embed.Fields[0].Value)
}

func TestRenderHistory_CapsFields(t *testing.T) {
	records := make([]*models.MatchRecord, 30)
	for i := range records {
		records[i] = &models.MatchRecord{ID: int64(i + 1), WinnerName: "Ana", LoserName: "Ben"}
	}

	embed := renderHistory(records)

	assert.Len(t, embed.Fields, maxEmbedFields)
}

func TestRenderProfile(t *testing.T) {
	embed := renderProfile(models.PlayerProfile{PlayerStats: models.PlayerStats{PlayerName: "Ana"}})
	assert.Equal(t, "No completed matches yet.", embed.Description)

	profile := models.PlayerProfile{
		PlayerStats: models.PlayerStats{
			PlayerName:    "Ana",
			MatchesPlayed: 3,
			Wins:          2,
			TotalAces:     9,
			TotalWinners:  21,
		},
		Losses:          1,
		WinRate:         67,
		LastFiveResults: []bool{true, false, true},
		LastMatch:       &models.MatchRecord{ID: 1, WinnerName: "Ana", LoserName: "Erin"},
	}

	embed = renderProfile(profile)

	assert.Equal(t, "📊 Ana", embed.Title)
	require.Len(t, embed.Fields, 7)
	assert.Equal(t, "2-1", embed.Fields[1].Value)
	assert.Equal(t, "67%", embed.Fields[2].Value)
	assert.Equal(t, "W L W", embed.Fields[5].Value)
	assert.Contains(t, embed.Fields[6].Value, "**Ana** def. Erin")
}
