package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// SendPrivateEmbed sends a direct message with an embed and optional
// components to a user. The error is returned so callers can report delivery
// failures (for example blocked DMs) without treating them as fatal.
func SendPrivateEmbed(s *discordgo.Session, userID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error creating private channel with user %s: %v", userID, err)
		return err
	}
	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Printf("Error sending private embed message to user %s: %v", userID, err)
	}
	return err
}
