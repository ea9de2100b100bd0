package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/KirkDiggler/deuce/internal/scoring"
	"github.com/bwmarrin/discordgo"
)

const (
	colorInProgress = 0x2e8b57
	colorTiebreak   = 0xffa500
	colorComplete   = 0xffd700
	colorInfo       = 0x1e90ff
	colorError      = 0xff0000

	// Discord caps an embed at 25 fields
	maxEmbedFields = 25
)

// Button actions; custom IDs are "<action>:<slot>"
const (
	ActionPoint       = "point"
	ActionAce         = "ace"
	ActionWinner      = "winner"
	ActionDoubleFault = "doubleFault"
	ActionRematch     = "rematch"
)

// buttonID builds the custom ID for a scoring button
func buttonID(action string, slot models.PlayerSlot) string {
	if slot == models.PlayerSlotNone {
		return action
	}
	return action + ":" + string(slot)
}

// parseButtonID splits a custom ID built by buttonID
func parseButtonID(customID string) (string, models.PlayerSlot, bool) {
	if customID == ActionRematch {
		return ActionRematch, models.PlayerSlotNone, true
	}

	action, rawSlot, found := strings.Cut(customID, ":")
	if !found {
		return "", models.PlayerSlotNone, false
	}

	slot := models.PlayerSlot(rawSlot)
	if !slot.Valid() {
		return "", models.PlayerSlotNone, false
	}

	switch action {
	case ActionPoint, ActionAce, ActionWinner, ActionDoubleFault:
		return action, slot, true
	default:
		return "", models.PlayerSlotNone, false
	}
}

// renderScoreboard renders the live scoreboard embed for a match
func renderScoreboard(match *models.Match) *discordgo.MessageEmbed {
	state := match.State

	description := "In progress"
	color := colorInProgress
	switch {
	case state.IsComplete():
		description = fmt.Sprintf("🏆 %s wins the match!", match.PlayerName(state.Winner))
		color = colorComplete
	case state.IsTiebreak:
		description = "Tiebreak"
		color = colorTiebreak
	}

	fields := []*discordgo.MessageEmbedField{
		playerField(match, models.PlayerSlotOne),
		playerField(match, models.PlayerSlotTwo),
	}

	if len(state.SetScores) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Sets",
			Value: formatSets(state.SetScores),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎾 %s vs %s", match.Player1Name, match.Player2Name),
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

func playerField(match *models.Match, slot models.PlayerSlot) *discordgo.MessageEmbedField {
	score := match.State.Score(slot)
	tally := match.Stats.Tally(slot)

	pointsLabel := "Points"
	if match.State.IsTiebreak {
		pointsLabel = "Tiebreak"
	}

	value := fmt.Sprintf("Sets **%d** · Games **%d** · %s **%s**\nAces %d · Winners %d · Double faults %d",
		score.Sets, score.Games, pointsLabel, scoring.DisplayPoints(match.State, slot),
		tally.Aces, tally.Winners, tally.DoubleFaults)

	return &discordgo.MessageEmbedField{
		Name:   match.PlayerName(slot),
		Value:  value,
		Inline: true,
	}
}

// scoreboardComponents renders the buttons under a scoreboard: a row of
// scoring buttons per player while the match runs, a rematch button after
func scoreboardComponents(match *models.Match) []discordgo.MessageComponent {
	if match.State.IsComplete() {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Rematch",
						Style:    discordgo.SuccessButton,
						CustomID: buttonID(ActionRematch, models.PlayerSlotNone),
						Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
					},
				},
			},
		}
	}

	return []discordgo.MessageComponent{
		playerButtons(match, models.PlayerSlotOne),
		playerButtons(match, models.PlayerSlotTwo),
	}
}

func playerButtons(match *models.Match, slot models.PlayerSlot) discordgo.ActionsRow {
	name := match.PlayerName(slot)
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("Point %s", name),
				Style:    discordgo.PrimaryButton,
				CustomID: buttonID(ActionPoint, slot),
			},
			discordgo.Button{
				Label:    "Ace",
				Style:    discordgo.SuccessButton,
				CustomID: buttonID(ActionAce, slot),
			},
			discordgo.Button{
				Label:    "Winner",
				Style:    discordgo.SuccessButton,
				CustomID: buttonID(ActionWinner, slot),
			},
			discordgo.Button{
				Label:    "Double Fault",
				Style:    discordgo.DangerButton,
				CustomID: buttonID(ActionDoubleFault, slot),
			},
		},
	}
}

// renderHistory renders a page of completed matches
func renderHistory(records []*models.MatchRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📜 Match history",
		Color: colorInfo,
	}

	if len(records) == 0 {
		embed.Description = "No matches recorded yet."
		return embed
	}

	for _, record := range records {
		if len(embed.Fields) == maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, recordField(record))
	}

	return embed
}

func recordField(record *models.MatchRecord) *discordgo.MessageEmbedField {
	winnerSlot := record.SlotOf(record.WinnerName)
	winnerStats := record.Stats.For(winnerSlot)
	loserStats := record.Stats.For(winnerSlot.Opponent())

	result := fmt.Sprintf("**%s** def. %s", record.WinnerName, record.LoserName)
	if len(record.Score.SetScores) > 0 {
		result += " " + formatSets(record.Score.SetScores)
	}

	return &discordgo.MessageEmbedField{
		Name: fmt.Sprintf("#%d · %s", record.ID, models.FormatMatchDate(record.Date)),
		Value: fmt.Sprintf("%s\nWinners %d%% vs %d%% · Aces %d vs %d",
			result,
			winnerStats.WinningPercentage, loserStats.WinningPercentage,
			winnerStats.Aces, loserStats.Aces),
	}
}

// renderProfile renders a player's aggregated history
func renderProfile(profile models.PlayerProfile) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s", profile.PlayerName),
		Color: colorInfo,
	}

	if profile.MatchesPlayed == 0 {
		embed.Description = "No completed matches yet."
		return embed
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Matches", Value: fmt.Sprintf("%d", profile.MatchesPlayed), Inline: true},
		{Name: "Record", Value: fmt.Sprintf("%d-%d", profile.Wins, profile.Losses), Inline: true},
		{Name: "Win rate", Value: fmt.Sprintf("%d%%", profile.WinRate), Inline: true},
		{Name: "Aces", Value: fmt.Sprintf("%d", profile.TotalAces), Inline: true},
		{Name: "Winners", Value: fmt.Sprintf("%d", profile.TotalWinners), Inline: true},
		{Name: "Form", Value: formatForm(profile.LastFiveResults), Inline: true},
	}

	if profile.LastMatch != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Last match",
			Value: recordField(profile.LastMatch).Value,
		})
	}

	return embed
}

func formatSets(sets []models.SetScore) string {
	parts := make([]string, 0, len(sets))
	for _, set := range sets {
		parts = append(parts, set.String())
	}
	return strings.Join(parts, ", ")
}

// formatForm renders results newest first as W/L
func formatForm(results []bool) string {
	if len(results) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(results))
	for _, won := range results {
		if won {
			parts = append(parts, "W")
		} else {
			parts = append(parts, "L")
		}
	}
	return strings.Join(parts, " ")
}
