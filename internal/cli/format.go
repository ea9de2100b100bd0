package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/deuce/internal/models"
)

// summaryLine is the one-line form of a record used by list
func summaryLine(record *models.MatchRecord) string {
	line := fmt.Sprintf("%d  %s  %s def. %s",
		record.ID, models.FormatMatchDate(record.Date), record.WinnerName, record.LoserName)
	if sets := formatSets(record.Score.SetScores); sets != "" {
		line += "  " + sets
	}
	return line
}

func formatSets(sets []models.SetScore) string {
	parts := make([]string, 0, len(sets))
	for _, set := range sets {
		parts = append(parts, set.String())
	}
	return strings.Join(parts, ", ")
}

// writeRecord prints the detail view of a single match
func writeRecord(w io.Writer, record *models.MatchRecord) error {
	winnerSlot := record.SlotOf(record.WinnerName)
	loserSlot := winnerSlot.Opponent()
	winner := record.Stats.For(winnerSlot)
	loser := record.Stats.For(loserSlot)

	fmt.Fprintf(w, "Match %d\n", record.ID)
	fmt.Fprintf(w, "Date:   %s\n", models.FormatMatchDate(record.Date))
	fmt.Fprintf(w, "Result: %s def. %s\n", record.WinnerName, record.LoserName)
	if sets := formatSets(record.Score.SetScores); sets != "" {
		fmt.Fprintf(w, "Sets:   %s\n", sets)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tACES\tWINNERS\tDOUBLE FAULTS\tWINNING %")
	fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d%%\n", record.WinnerName, winner.Aces, winner.Winners, winner.DoubleFaults, winner.WinningPercentage)
	fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d%%\n", record.LoserName, loser.Aces, loser.Winners, loser.DoubleFaults, loser.WinningPercentage)
	return tw.Flush()
}

// writeProfile prints a player's profile
func writeProfile(w io.Writer, profile models.PlayerProfile) error {
	fmt.Fprintf(w, "%s\n", profile.PlayerName)
	if profile.MatchesPlayed == 0 {
		_, err := fmt.Fprintln(w, "No completed matches yet.")
		return err
	}

	fmt.Fprintf(w, "Record:   %d-%d (%d%%)\n", profile.Wins, profile.Losses, profile.WinRate)
	fmt.Fprintf(w, "Aces:     %d\n", profile.TotalAces)
	fmt.Fprintf(w, "Winners:  %d\n", profile.TotalWinners)
	fmt.Fprintf(w, "Form:     %s\n", formatForm(profile.LastFiveResults))
	if profile.LastMatch != nil {
		fmt.Fprintf(w, "Last:     %s\n", summaryLine(profile.LastMatch))
	}
	return nil
}

// formatForm renders results newest first as W/L
func formatForm(results []bool) string {
	if len(results) == 0 {
		return "-"
	}

	var b strings.Builder
	for i, won := range results {
		if i > 0 {
			b.WriteByte(' ')
		}
		if won {
			b.WriteByte('W')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}
