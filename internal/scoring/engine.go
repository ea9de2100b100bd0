// Package scoring implements the tennis scoring rules as pure functions over
// models.MatchState. Callers hold the state; nothing here keeps any.
package scoring

import (
	"github.com/KirkDiggler/deuce/internal/models"
)

const (
	// pointsAdvantage is the Points value meaning "Ad"
	pointsAdvantage = 4

	// pointsForty is the Points value meaning 40
	pointsForty = 3

	// gamesToWinSet is the minimum games needed to take a set
	gamesToWinSet = 6

	// tiebreakPointsToWin is the minimum tiebreak points needed to take a set
	tiebreakPointsToWin = 7

	// minimumMargin is the lead required to close a set or a tiebreak
	minimumMargin = 2

	// setsToWinMatch makes every match best of three
	setsToWinMatch = 2
)

// Reset returns the state of a match that has not started
func Reset() models.MatchState {
	return models.MatchState{}
}

// ResetStats returns zeroed stat counters
func ResetStats() models.MatchStats {
	return models.MatchStats{}
}

// ApplyPoint awards a point to scorer and returns the resulting state together
// with at most one notification describing the transition.
//
// A finished match or an unknown scorer leaves the state untouched.
func ApplyPoint(state models.MatchState, scorer models.PlayerSlot) (models.MatchState, []models.Notification) {
	if state.IsComplete() || !scorer.Valid() {
		return state, nil
	}

	next := state.Clone()
	if next.IsTiebreak {
		return next, applyTiebreakPoint(&next, scorer)
	}
	return next, applyGamePoint(&next, scorer)
}

func applyTiebreakPoint(state *models.MatchState, scorer models.PlayerSlot) []models.Notification {
	player := state.Score(scorer)
	opponent := state.Score(scorer.Opponent())

	player.TiebreakPoints++
	if player.TiebreakPoints < tiebreakPointsToWin || player.TiebreakPoints-opponent.TiebreakPoints < minimumMargin {
		return nil
	}

	// Games are left at 7-6 here; only the tiebreak counters are cleared.
	player.Games++
	player.Sets++
	player.TiebreakPoints = 0
	opponent.TiebreakPoints = 0
	state.IsTiebreak = false
	state.SetScores = append(state.SetScores, setScore(state))

	return finishSet(state, scorer)
}

func applyGamePoint(state *models.MatchState, scorer models.PlayerSlot) []models.Notification {
	player := state.Score(scorer)
	opponent := state.Score(scorer.Opponent())
	p, o := player.Points, opponent.Points

	switch {
	case p == pointsForty && o == pointsForty:
		player.Points = pointsAdvantage
		return nil
	case p == pointsAdvantage && o == pointsAdvantage:
		// Not reachable through ApplyPoint; kept so a hand-built state recovers.
		player.Points = pointsForty
		opponent.Points = pointsForty
		return nil
	case p == pointsForty && o == pointsAdvantage:
		player.Points = pointsForty
		opponent.Points = pointsForty
		return nil
	case (p == pointsForty && o < pointsForty) || (p == pointsAdvantage && o == pointsForty):
		return winGame(state, scorer)
	default:
		player.Points++
		return nil
	}
}

func winGame(state *models.MatchState, scorer models.PlayerSlot) []models.Notification {
	player := state.Score(scorer)
	opponent := state.Score(scorer.Opponent())

	player.Points = 0
	opponent.Points = 0
	player.Games++

	if player.Games == gamesToWinSet && opponent.Games == gamesToWinSet {
		state.IsTiebreak = true
		return notify(models.NotificationTiebreakStarted, scorer)
	}

	if player.Games >= gamesToWinSet && player.Games-opponent.Games >= minimumMargin {
		state.SetScores = append(state.SetScores, setScore(state))
		player.Games = 0
		opponent.Games = 0
		player.Sets++
		return finishSet(state, scorer)
	}

	return notify(models.NotificationGameWon, scorer)
}

// finishSet decides between SetWon and MatchWon once scorer's set count has moved
func finishSet(state *models.MatchState, scorer models.PlayerSlot) []models.Notification {
	if state.Score(scorer).Sets >= setsToWinMatch {
		state.Winner = scorer
		return notify(models.NotificationMatchWon, scorer)
	}
	return notify(models.NotificationSetWon, scorer)
}

func setScore(state *models.MatchState) models.SetScore {
	return models.SetScore{
		Player1: state.Player1.Games,
		Player2: state.Player2.Games,
	}
}

func notify(kind models.NotificationKind, player models.PlayerSlot) []models.Notification {
	return []models.Notification{{Kind: kind, Player: player}}
}

// RecordStat counts a stat event for scorer. Aces and winners also win the
// point, and the notifications of that point are returned unchanged. Double
// faults only move the counter.
//
// Nothing is recorded once the match is over, or for an unknown slot or kind.
func RecordStat(state models.MatchState, stats models.MatchStats, scorer models.PlayerSlot, kind models.StatKind) (models.MatchState, models.MatchStats, []models.Notification) {
	if state.IsComplete() || !scorer.Valid() || !kind.Valid() {
		return state, stats, nil
	}

	tally := stats.Tally(scorer)
	switch kind {
	case models.StatKindAce:
		tally.Aces++
	case models.StatKindWinner:
		tally.Winners++
	case models.StatKindDoubleFault:
		tally.DoubleFaults++
	}

	if !kind.AwardsPoint() {
		return state, stats, nil
	}

	next, notifications := ApplyPoint(state, scorer)
	return next, stats, notifications
}
