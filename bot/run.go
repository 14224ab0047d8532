package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	log.Println("Registering commands for enabled guilds...")
	b.RegisteredCommands = make([]*discordgo.ApplicationCommand, 0)
	cfg := b.GetConfig()
	if len(cfg.ServerConfigs) == 0 {
		b.RefreshCommands("")
	} else {
		for _, serverCfg := range cfg.ServerConfigs {
			if serverCfg.Enable {
				b.RefreshCommands(serverCfg.GuildID)
			}
		}
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
