package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption finds an option by name, descending through subcommands
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	return findOption(i.ApplicationCommandData().Options, name)
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}
		// drill into the subcommand
		options = options[0].Options
	}
	return nil
}

// Subcommand returns the name of the invoked subcommand, if any
func Subcommand(i *discordgo.InteractionCreate) string {
	if i.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return ""
	}
	return options[0].Name
}

// GetStringOption returns a string option or "" when absent
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption returns an integer option and whether it was supplied
func GetIntOption(i *discordgo.InteractionCreate, name string) (int, bool) {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return 0, false
	}
	return int(opt.IntValue()), true
}

// GetBoolOption returns a boolean option or false when absent
func GetBoolOption(i *discordgo.InteractionCreate, name string) bool {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return false
	}
	return opt.BoolValue()
}

// UserID is the invoking user, whether in a guild or a DM
func UserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
