package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// CommandTimeout bounds the API work behind a single interaction
const CommandTimeout = 15 * time.Second

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory builds a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
	Stats    *CommandStats
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAll adds every factory's command
func (r *CommandRegistry) RegisterAll(factories ...CommandFactory) {
	for _, f := range factories {
		r.Register(f())
	}
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn("Unknown command", "command", name)
		return
	}
	if r.Stats != nil {
		r.Stats.Record()
	}
	h(s, i, client)
}

// AllCommands lists every command the bot serves
func AllCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		RegisterCommand,
		UpgradeCommand,
		WeaponCommand,
		OddsCommand,
	}
}

// RegisterCommands registers or updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Updating commands",
		"existing", len(existingCmds),
		"desired", len(desiredCmds),
		"forced", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	return a.Type == b.Type &&
		a.Name == b.Name &&
		a.Description == b.Description &&
		a.Required == b.Required
}

// commandContext bounds the API calls made while serving one interaction
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), CommandTimeout)
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any API call that might take longer than 3 seconds.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// boolOption returns the named boolean option or def when absent
func boolOption(i *discordgo.InteractionCreate, name string, def bool) bool {
	for _, opt := range getOptions(i) {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionBoolean {
			return opt.BoolValue()
		}
	}
	return def
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondContent(s, i, message)
}

func respondContent(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError turns an API error into something a player can act on
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API failures to chat messages
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgConnectionError
	}

	msg := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(msg, domain.ErrMsgPlayerAlreadyExists):
		return MsgAlreadyRegistered
	case strings.Contains(msg, domain.ErrMsgPlayerNotFound),
		strings.Contains(msg, domain.ErrMsgWeaponNotFound),
		strings.Contains(msg, domain.ErrMsgInventoryNotFound):
		return MsgNotRegistered
	case apiErr.StatusCode == http.StatusServiceUnavailable:
		return MsgForgeBusy
	case apiErr.StatusCode == http.StatusUnauthorized:
		return MsgConnectionError
	case apiErr.Message != "":
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}

// Footer text for every embed
const FooterSigilForge = "SigilForge"

// createEmbed creates a standard embed with the shared footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterSigilForge,
		},
	}
}

// sendEmbed edits the deferred response into an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}
