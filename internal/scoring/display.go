package scoring

import (
	"strconv"

	"github.com/KirkDiggler/deuce/internal/models"
)

var pointLabels = [...]string{"0", "15", "30", "40", "Ad"}

// PointLabel maps a Points value to its tennis call. Out of range values read as "0".
func PointLabel(points int) string {
	if points < 0 || points >= len(pointLabels) {
		return pointLabels[0]
	}
	return pointLabels[points]
}

// DisplayPoints is what a scoreboard shows for slot: the raw tiebreak count
// during a tiebreak, the tennis call otherwise.
func DisplayPoints(state models.MatchState, slot models.PlayerSlot) string {
	score := state.Score(slot)
	if score == nil {
		return PointLabel(0)
	}
	if state.IsTiebreak {
		return strconv.Itoa(score.TiebreakPoints)
	}
	return PointLabel(score.Points)
}

// MatchWinner returns the player who took more than half of the given sets,
// or PlayerSlotNone if nobody has.
func MatchWinner(sets []models.SetScore) models.PlayerSlot {
	var player1Sets, player2Sets int
	for _, set := range sets {
		switch {
		case set.Player1 > set.Player2:
			player1Sets++
		case set.Player2 > set.Player1:
			player2Sets++
		}
	}

	half := float64(len(sets)) / 2
	switch {
	case float64(player1Sets) > half:
		return models.PlayerSlotOne
	case float64(player2Sets) > half:
		return models.PlayerSlotTwo
	default:
		return models.PlayerSlotNone
	}
}
