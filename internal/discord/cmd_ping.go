package discord

import (
	"github.com/bwmarrin/discordgo"
)

// PingCommand answers with the bot's liveness and whether the forge API is reachable
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot and the forge are up",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			respondError(s, i, MsgPongForgeDown)
			return
		}
		respondContent(s, i, MsgPong)
	}

	return cmd, handler
}
