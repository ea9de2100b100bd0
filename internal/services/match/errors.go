package match

// MatchError is a custom error type for live match errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound     MatchError = "no match in this channel"
	ErrMatchInProgress   MatchError = "a match is already in progress in this channel"
	ErrInvalidPlayer     MatchError = "player must be player1 or player2"
	ErrInvalidStat       MatchError = "unknown stat"
	ErrChannelRequired   MatchError = "channel ID is required"
	ErrNilInput          MatchError = "input cannot be nil"
	ErrNilConfig         MatchError = "config cannot be nil"
	ErrNilMatchRepo      MatchError = "match repository cannot be nil"
	ErrNilHistoryService MatchError = "history service cannot be nil"
	ErrNilClock          MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator  MatchError = "UUID generator cannot be nil"
)
