package delve

import (
	"github.com/bwmarrin/discordgo"
)

type HelpRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Handle(req *HelpRequest) error {
	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{HelpEmbed()},
			Flags:  discordgo.MessageFlagsEphemeral, // Only visible to the user
		},
	})
}

// HelpEmbed lists the commands and rest modes
func HelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🕯️ Delve Help",
		Description: "Keep your adventurer alive between fights.",
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📚 Commands",
				Value: "`/delve new` make an adventurer\n`/delve vitals` show HP and SP\n`/delve rest` rest for a while\n`/delve hit` take damage\n`/delve cast` spend spell points",
			},
			{
				Name: "💤 Rest modes",
				Value: "`&` as needed\n`*` until HP and SP are full\n`!` until HP or SP is full\n" +
					"`sun` until the sun rises or sets\n`repeat` the last rest\nor give a number of `turns`",
			},
			{
				Name:  "⚠️ Disturbances",
				Value: "Taking damage, a fading light or anything else alarming stops a rest early.",
			},
		},
	}
}
