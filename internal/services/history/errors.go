package history

// HistoryError is a custom error type for match history errors
type HistoryError string

// Error implements the error interface
func (e HistoryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          HistoryError = "config cannot be nil"
	ErrNilStore           HistoryError = "record store cannot be nil"
	ErrNilInput           HistoryError = "input cannot be nil"
	ErrMatchNotFound      HistoryError = "match not found"
	ErrPlayerNameRequired HistoryError = "player name is required"
)
