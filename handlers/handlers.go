package handlers

import (
	"log"
	"strings"

	"mod-helper/bot"
	"mod-helper/handlers/serverconfig"
	"mod-helper/handlers/warn"
	"mod-helper/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			serverconfig.HandleConfigCommand(s, i, b)
		},
		"warn": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			warn.HandleWarnCommand(s, i, b)
		},
		"warn-history": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			warn.HandleWarnHistoryCommand(s, i, b)
		},
		"bot-status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			BotStatusHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		cfg := b.GetConfig()
		if err := utils.LogInfo(cfg.LogWebhookURL, "System", "启动", "Bot has started successfully."); err != nil {
			log.Printf("Failed to send startup log: %v", err)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			customID := i.MessageComponentData().CustomID
			switch {
			case strings.HasPrefix(customID, warn.AppealButtonPrefix+":"):
				warn.HandleAppealButton(s, i, b)
			case strings.HasPrefix(customID, warn.HistoryPagePrefix+":"):
				warn.HandleWarnHistoryPagination(s, i, b)
			}
		}
	})
}
