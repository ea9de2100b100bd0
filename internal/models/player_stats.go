package models

// PlayerStats aggregates a player's results across the match history
type PlayerStats struct {
	// PlayerName is the player the stats belong to
	PlayerName string

	// MatchesPlayed counts the matches the player took part in
	MatchesPlayed int

	// Wins counts the matches the player won
	Wins int

	// TotalAces sums the player's aces
	TotalAces int

	// TotalWinners sums the player's winners
	TotalWinners int
}

// PlayerProfile is the profile view of a player
type PlayerProfile struct {
	PlayerStats

	// Losses counts the matches the player lost
	Losses int

	// WinRate is round(wins / matches * 100), 0 with no matches
	WinRate int

	// LastMatch is the player's most recent match, nil with no matches
	LastMatch *MatchRecord

	// LastFiveResults holds win flags for the player's five most recent matches, newest first
	LastFiveResults []bool
}
