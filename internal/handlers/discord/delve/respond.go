package delve

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

func editEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

func editError(s *discordgo.Session, i *discordgo.InteractionCreate, cause error) error {
	log.Printf("delve: %s failed: %v", i.ApplicationCommandData().Name, cause)
	content := ErrorContent(cause)
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// reply runs build after acknowledging and edits in its embed or error
func reply(s *discordgo.Session, i *discordgo.InteractionCreate, build func() (*discordgo.MessageEmbed, error)) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	embed, err := build()
	if err != nil {
		return editError(s, i, err)
	}
	return editEmbed(s, i, embed)
}
