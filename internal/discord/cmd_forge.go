package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Option names
const optionUseSigil = "use_sigil"

// RegisterCommand claims a starting weapon for the caller
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Claim your starting weapon",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		p, err := client.RegisterPlayer(ctx, user.ID, user.Username)
		if err != nil {
			slog.Warn("Failed to register player", "discord_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🗡️ Welcome to the Forge",
			fmt.Sprintf("You received **%s** and %d sigil(s).", weaponLabel(p.Weapon), p.Inventory.SigilProtection),
			ColorSuccess)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// UpgradeCommand attempts one upgrade on the caller's weapon
func UpgradeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "upgrade",
		Description: "Try to upgrade your weapon",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionUseSigil,
				Description: "Spend a sigil to avoid a downgrade on failure (default: true)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		useSigil := boolOption(i, optionUseSigil, true)

		outcome, err := client.Upgrade(ctx, user.ID, useSigil)
		if err != nil {
			slog.Warn("Upgrade failed", "discord_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, outcomeEmbed(*outcome))
	}

	return cmd, handler
}

// WeaponCommand shows the caller's weapon and sigils
func WeaponCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "weapon",
		Description: "Show your weapon and sigils",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		p, err := client.GetPlayer(ctx, user.ID)
		if err != nil {
			slog.Warn("Failed to load player", "discord_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, playerEmbed(*p))
	}

	return cmd, handler
}

// OddsCommand lists the success chance per target level
func OddsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "odds",
		Description: "Show the upgrade success chance for each level",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		chances, err := client.GetChances(ctx)
		if err != nil {
			slog.Warn("Failed to load odds", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🎲 Upgrade Odds", oddsTable(*chances), ColorInfo)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Max Level", Value: fmt.Sprintf("+%d", chances.MaxLevel), Inline: true},
			{Name: "Glow From", Value: fmt.Sprintf("+%d", chances.GlowLevel), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
