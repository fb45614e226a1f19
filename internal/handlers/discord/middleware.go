package discord

import (
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// InteractionFunc is the shape discordgo calls interaction handlers with
type InteractionFunc func(*discordgo.Session, *discordgo.InteractionCreate)

// RecoverMiddleware keeps a panicking command from taking the bot down
func RecoverMiddleware(name string, next InteractionFunc) InteractionFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", name, r, debug.Stack())
				respondWithError(s, i, "The dungeon shifted unexpectedly. Please try again.")
			}
		}()

		next(s, i)
	}
}

// respondWithError tells the user something failed, whether or not the interaction was acknowledged
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}

	// already acknowledged
	if _, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("Failed to send error response to user: %s (%v)", message, err)
	}
}
