package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/KirkDiggler/deuce/internal/services/match"
	"github.com/KirkDiggler/deuce/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = maxEmbedFields
)

// TennisCommand handles the /tennis command
type TennisCommand struct {
	BaseCommand
	matchService     match.Service
	historyService   history.Service
	messagingService messaging.Service
	logger           *log.Logger
}

// NewTennisCommand creates a new tennis command handler
func NewTennisCommand(matchService match.Service, historyService history.Service, messagingService messaging.Service, logger *log.Logger) *TennisCommand {
	minLimit := float64(1)

	return &TennisCommand{
		BaseCommand: BaseCommand{
			Name:        "tennis",
			Description: "Keep score of a tennis match",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a best of three match in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player1",
							Description: "Name of the first player",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player2",
							Description: "Name of the second player",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Show the scoreboard for this channel's match",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset the score and stats, keeping the players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Stop tracking the current match without saving it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recently completed matches",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many matches to show",
							MinValue:    &minLimit,
							MaxValue:    maxHistoryLimit,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's record",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a match from the history",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "id",
							Description: "Match ID shown in /tennis history",
							Required:    true,
						},
					},
				},
			},
		},
		matchService:     matchService,
		historyService:   historyService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the tennis command
func (c *TennisCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	subcommand := data.Options[0]
	options := optionMap(subcommand.Options)
	channelID := i.ChannelID

	switch subcommand.Name {
	case "start":
		return c.handleStart(s, i, channelID, options)
	case "score":
		return c.handleScore(s, i, channelID)
	case "reset":
		return c.handleReset(s, i, channelID)
	case "abandon":
		return c.handleAbandon(s, i, channelID)
	case "history":
		return c.handleHistory(s, i, options)
	case "stats":
		return c.handleStats(s, i, options)
	case "delete":
		return c.handleDelete(s, i, options)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *TennisCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.matchService.StartMatch(ctx, &match.StartMatchInput{
		ChannelID:   channelID,
		Player1Name: stringOption(options, "player1"),
		Player2Name: stringOption(options, "player2"),
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return c.postScoreboard(ctx, s, i, output.Match)
}

func (c *TennisCommand) handleScore(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	output, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return c.postScoreboard(ctx, s, i, output.Match)
}

func (c *TennisCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	output, err := c.matchService.ResetMatch(ctx, &match.ResetMatchInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return c.postScoreboard(ctx, s, i, output.Match)
}

func (c *TennisCommand) handleAbandon(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	if err := c.matchService.AbandonMatch(ctx, &match.AbandonMatchInput{
		ChannelID: channelID,
	}); err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithMessage(s, i, "Match abandoned. Nothing was saved.")
}

func (c *TennisCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	limit := defaultHistoryLimit
	if option, ok := options["limit"]; ok {
		limit = min(max(int(option.IntValue()), 1), maxHistoryLimit)
	}

	output, err := c.historyService.ListMatches(ctx, &history.ListMatchesInput{
		Limit: limit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderHistory(output.Records), nil)
}

func (c *TennisCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.historyService.GetPlayerProfile(ctx, &history.GetPlayerProfileInput{
		PlayerName: stringOption(options, "player"),
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderProfile(output.Profile), nil)
}

func (c *TennisCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	option, ok := options["id"]
	if !ok {
		return RespondWithError(s, i, "Give the ID of the match to delete.")
	}
	id := option.IntValue()

	// Deleting an unknown ID is silent in the history, so check first to tell the user
	if _, err := c.historyService.GetMatch(ctx, &history.GetMatchInput{ID: id}); err != nil {
		return c.respondError(ctx, s, i, err)
	}

	if err := c.historyService.DeleteMatch(ctx, &history.DeleteMatchInput{ID: id}); err != nil {
		return c.respondError(ctx, s, i, err)
	}

	output, err := c.messagingService.GetMatchDeletedMessage(ctx, &messaging.GetMatchDeletedMessageInput{ID: id})
	if err != nil {
		return err
	}

	return RespondWithMessage(s, i, output.Message)
}

// postScoreboard answers with a fresh scoreboard and remembers its message
// so button clicks and later edits target it
func (c *TennisCommand) postScoreboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, m *models.Match) error {
	if err := RespondWithEmbed(s, i, renderScoreboard(m), scoreboardComponents(m)); err != nil {
		return err
	}

	message, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		c.logger.Warn("could not fetch scoreboard message", "channel", m.ChannelID, "err", err)
		return nil
	}

	if err := c.matchService.SetMessageID(ctx, &match.SetMessageIDInput{
		ChannelID: m.ChannelID,
		MessageID: message.ID,
	}); err != nil {
		c.logger.Warn("could not store scoreboard message", "channel", m.ChannelID, "err", err)
	}

	return nil
}

// respondError answers with a player-facing message; unexpected errors are logged
func (c *TennisCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if !isExpected(err) {
		c.logger.Error("tennis command failed", "channel", i.ChannelID, "err", err)
	}

	output, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, fmt.Sprintf("Error: %v", err))
	}

	return RespondWithError(s, i, output.Message)
}

// isExpected reports errors caused by the user rather than the system
func isExpected(err error) bool {
	var matchErr match.MatchError
	var historyErr history.HistoryError
	return errors.As(err, &matchErr) || errors.As(err, &historyErr)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		byName[option.Name] = option
	}
	return byName
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if option, ok := options[name]; ok {
		return option.StringValue()
	}
	return ""
}
