package commands

import (
	"mod-helper/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns the full slash-command set registered per guild.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.ServerConfig,
		defs.Warn,
		defs.WarnHistory,
		defs.BotStatus,
	}
}
