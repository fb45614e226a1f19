package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/delve"
	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/utils"
	"github.com/KirkDiggler/delve-vitals/internal/services"
)

// CommandName is the root slash command
const CommandName = "delve"

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	createHandler *delve.CreateHandler
	restHandler   *delve.RestHandler
	vitalsHandler *delve.VitalsHandler
	hitHandler    *delve.HitHandler
	castHandler   *delve.CastHandler
	helpHandler   *delve.HelpHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	svc := cfg.ServiceProvider.TurnService
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		createHandler:   delve.NewCreateHandler(&delve.CreateHandlerConfig{TurnService: svc}),
		restHandler:     delve.NewRestHandler(&delve.RestHandlerConfig{TurnService: svc}),
		vitalsHandler:   delve.NewVitalsHandler(&delve.VitalsHandlerConfig{TurnService: svc}),
		hitHandler:      delve.NewHitHandler(&delve.HitHandlerConfig{TurnService: svc}),
		castHandler:     delve.NewCastHandler(&delve.CastHandlerConfig{TurnService: svc}),
		helpHandler:     delve.NewHelpHandler(),
	}
}

// Commands is the slash command tree the bot registers
func Commands() []*discordgo.ApplicationCommand {
	minOne := float64(1)
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Dungeon vitals: rest, heal and survive",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "new",
					Description: "Create a new adventurer",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Adventurer name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hp",
							Description: "Maximum hit points",
							MinValue:    &minOne,
							MaxValue:    vitals.MaxWhole,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "mana",
							Description: "Maximum spell points",
							MaxValue:    vitals.MaxWhole,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "trait",
							Description: "Innate gift",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Regeneration", Value: "regeneration"},
								{Name: "Meditation", Value: "meditation"},
								{Name: "Combat regeneration", Value: "combat_regen"},
								{Name: "Fury", Value: "fury"},
							},
						},
					},
				},
				{
					Name:        "rest",
					Description: "Rest for a number of turns or until a goal is met",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "How long to rest",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "As needed (&)", Value: delve.ModeAsNeeded},
								{Name: "HP and SP (*)", Value: delve.ModeHPAndSP},
								{Name: "HP or SP (!)", Value: delve.ModeHPOrSP},
								{Name: "Until sunrise or sunset", Value: delve.ModeSunlight},
								{Name: "Repeat last rest", Value: delve.ModeRepeat},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "turns",
							Description: "Turns to rest (1-9999)",
							MinValue:    &minOne,
							MaxValue:    9999,
						},
					},
				},
				{
					Name:        "vitals",
					Description: "Show hit points, spell points and rest state",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "hit",
					Description: "Take damage",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "damage",
							Description: "Hit points of damage",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cause",
							Description: "What hit you",
						},
					},
				},
				{
					Name:        "cast",
					Description: "Spend spell points",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "mana",
							Description: "Spell points to spend",
							Required:    true,
							MinValue:    &minOne,
						},
					},
				},
				{
					Name:        "help",
					Description: "Show how to play",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// RegisterCommands registers the slash commands
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != CommandName {
		return
	}

	sub := utils.Subcommand(i)
	if err := h.handleCommand(s, i, sub); err != nil {
		log.Printf("Error handling %s command: %v", sub, err)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub string) error {
	ownerID := utils.UserID(i)

	switch sub {
	case "new":
		maxHP, _ := utils.GetIntOption(i, "hp")
		maxMana, _ := utils.GetIntOption(i, "mana")
		return h.createHandler.Handle(&delve.CreateRequest{
			Session:     s,
			Interaction: i,
			OwnerID:     ownerID,
			Name:        utils.GetStringOption(i, "name"),
			MaxHP:       maxHP,
			MaxMana:     maxMana,
			Trait:       utils.GetStringOption(i, "trait"),
		})
	case "rest":
		turns, hasTurns := utils.GetIntOption(i, "turns")
		return h.restHandler.Handle(&delve.RestRequest{
			Session:     s,
			Interaction: i,
			OwnerID:     ownerID,
			Mode:        utils.GetStringOption(i, "mode"),
			Turns:       turns,
			HasTurns:    hasTurns,
		})
	case "vitals":
		return h.vitalsHandler.Handle(&delve.VitalsRequest{Session: s, Interaction: i, OwnerID: ownerID})
	case "hit":
		dam, _ := utils.GetIntOption(i, "damage")
		return h.hitHandler.Handle(&delve.HitRequest{
			Session:     s,
			Interaction: i,
			OwnerID:     ownerID,
			Damage:      dam,
			Cause:       utils.GetStringOption(i, "cause"),
		})
	case "cast":
		mana, _ := utils.GetIntOption(i, "mana")
		return h.castHandler.Handle(&delve.CastRequest{Session: s, Interaction: i, OwnerID: ownerID, Mana: mana})
	case "help":
		return h.helpHandler.Handle(&delve.HelpRequest{Session: s, Interaction: i})
	}
	return fmt.Errorf("unknown subcommand %q", sub)
}
