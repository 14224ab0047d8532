package defs

import "github.com/bwmarrin/discordgo"

var BotStatus = &discordgo.ApplicationCommand{
	Name:        "bot-status",
	Description: "Display bot and system status information",
	NameLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "系统信息",
		discordgo.ChineseTW: "系統信息",
	},
	DescriptionLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "显示机器人和系统的状态信息",
		discordgo.ChineseTW: "顯示機器人和系統的狀態信息",
	},
}
