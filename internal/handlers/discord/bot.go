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

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	matchService     match.Service
	historyService   history.Service
	messagingService messaging.Service
	logger           *log.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	MatchService     match.Service
	HistoryService   history.Service
	MessagingService messaging.Service

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.HistoryService == nil {
		return nil, errors.New("history service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		matchService:     cfg.MatchService,
		historyService:   cfg.HistoryService,
		messagingService: cfg.MessagingService,
		logger:           logger,
		config:           cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	tennisCmd := NewTennisCommand(b.matchService, b.historyService, b.messagingService, b.logger)
	if err := b.RegisterCommand(tennisCmd); err != nil {
		return fmt.Errorf("failed to register tennis command: %w", err)
	}

	active, err := b.matchService.ListActiveMatches(context.Background())
	if err != nil {
		b.logger.Warn("could not list active matches", "err", err)
	} else {
		b.logger.Info("resuming matches", "count", len(active.Matches))
	}

	b.logger.Info("bot is now running, press CTRL-C to exit")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.commandScope()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "err", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.commandScope()
	if guildID != "" {
		b.logger.Info("registering command for guild", "command", cmd.GetName(), "guild", guildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

// commandScope falls back to the session user when no application ID is set.
// An empty guild registers commands globally.
func (b *Bot) commandScope() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "err", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction", "custom_id", i.MessageComponentData().CustomID, "err", err)
		}
	}
}

// handleComponentInteraction handles scoreboard button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	action, slot, ok := parseButtonID(customID)
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	ctx := context.Background()
	channelID := i.ChannelID

	if action == ActionRematch {
		output, err := b.matchService.ResetMatch(ctx, &match.ResetMatchInput{
			ChannelID: channelID,
		})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		return RespondWithUpdate(s, i, renderScoreboard(output.Match), scoreboardComponents(output.Match))
	}

	var (
		output *match.ScoreOutput
		err    error
	)
	switch action {
	case ActionPoint:
		output, err = b.matchService.ScorePoint(ctx, &match.ScorePointInput{
			ChannelID: channelID,
			Player:    slot,
		})
	default:
		output, err = b.matchService.RecordStat(ctx, &match.RecordStatInput{
			ChannelID: channelID,
			Player:    slot,
			Kind:      models.StatKind(action),
		})
	}
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	if err := RespondWithUpdate(s, i, renderScoreboard(output.Match), scoreboardComponents(output.Match)); err != nil {
		return err
	}

	b.announce(ctx, s, i, output)
	return nil
}

// announce sends the toasts for a scoring event. Failures are only logged
// since the scoreboard has already been updated.
func (b *Bot) announce(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, output *match.ScoreOutput) {
	for _, notification := range output.Notifications {
		if notification.Kind == models.NotificationMatchWon {
			b.announceMatch(ctx, s, i, output)
			continue
		}

		toast, err := b.messagingService.GetNotificationMessage(ctx, &messaging.GetNotificationMessageInput{
			Notification: notification,
			Player1Name:  output.Match.Player1Name,
			Player2Name:  output.Match.Player2Name,
		})
		if err != nil {
			b.logger.Warn("could not build notification", "kind", notification.Kind, "err", err)
			continue
		}

		if err := FollowupEphemeral(s, i, toast.Message); err != nil {
			b.logger.Warn("could not send notification", "kind", notification.Kind, "err", err)
		}
	}
}

func (b *Bot) announceMatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, output *match.ScoreOutput) {
	announcement, err := b.messagingService.GetMatchCompleteMessage(ctx, &messaging.GetMatchCompleteMessageInput{
		Match: output.Match,
		Saved: output.Record != nil,
	})
	if err != nil {
		b.logger.Warn("could not build match announcement", "match", output.Match.ID, "err", err)
		return
	}

	if err := FollowupEmbed(s, i, &discordgo.MessageEmbed{
		Title:       announcement.Title,
		Description: announcement.Message,
		Color:       colorComplete,
	}); err != nil {
		b.logger.Warn("could not send match announcement", "match", output.Match.ID, "err", err)
	}
}

func (b *Bot) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if !isExpected(err) {
		b.logger.Error("button failed", "channel", i.ChannelID, "err", err)
	}

	output, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, fmt.Sprintf("Error: %v", err))
	}

	return RespondWithError(s, i, output.Message)
}
