package utils_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/utils"
)

func command(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "delve",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
				},
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		},
	}
}

func TestOptions(t *testing.T) {
	i := command("rest",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "turns", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(25)},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "mode", Type: discordgo.ApplicationCommandOptionString, Value: "&"},
	)

	assert.Equal(t, "rest", utils.Subcommand(i))
	assert.Equal(t, "&", utils.GetStringOption(i, "mode"))

	turns, ok := utils.GetIntOption(i, "turns")
	assert.True(t, ok)
	assert.Equal(t, 25, turns)

	_, ok = utils.GetIntOption(i, "missing")
	assert.False(t, ok)
	assert.Equal(t, "", utils.GetStringOption(i, "missing"))
	assert.False(t, utils.GetBoolOption(i, "missing"))

	assert.Equal(t, "user-1", utils.UserID(i))
}

func TestUserID_DirectMessage(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "dm-user"}}}
	assert.Equal(t, "dm-user", utils.UserID(i))
	assert.Equal(t, "", utils.Subcommand(i))
}
