package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/delve-vitals/internal/config"
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/events"
	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/delve"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
	"github.com/KirkDiggler/delve-vitals/internal/uuid"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Parse command line arguments
	hp := flag.Int("hp", 5, "Starting hit points")
	maxHP := flag.Int("max-hp", 40, "Maximum hit points")
	mana := flag.Int("mana", 0, "Starting spell points")
	maxMana := flag.Int("max-mana", 20, "Maximum spell points")
	food := flag.Int("food", 3000, "Nourishment")
	mode := flag.String("mode", "&", "Rest mode: &, *, !, sun or a number of turns")
	traits := flag.String("traits", "", "Comma separated traits (regeneration, meditation, combat_regen, fury)")
	monsters := flag.Int("monsters", 0, "Percent chance per turn of a wandering monster")
	lava := flag.Bool("lava", false, "Rest standing in lava")
	every := flag.Int("every", 10, "Print every n turns")
	flag.Parse()

	if *every <= 0 {
		*every = 1
	}

	game, err := config.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load game config: %v", err)
	}

	choice, err := delve.ParseRestChoice(*mode, 0, false)
	if err != nil || choice.Repeat {
		log.Fatalf("Invalid rest mode %q", *mode)
	}

	roller := dice.NewRandomRoller()

	var hazards turn.Hazards
	switch {
	case *lava:
		hazards = &turn.Standing{Terrain: damage.Lava}
	case *monsters > 0:
		hazards = &turn.WanderingMonsters{Roller: roller, Chance: *monsters, Count: 2, Sides: 6, Cause: "a wandering monster"}
	}

	ctx := context.Background()
	repo := players.NewInMemoryRepository()

	svc := turn.NewService(&turn.ServiceConfig{
		Repository:    repo,
		UUIDGenerator: uuid.NewSequence("sim"),
		Resolver: damage.NewResolver(damage.Config{
			Roller: roller,
			Tuning: damage.Tuning{InvulnBypass: game.InvulnBypass},
		}),
		Hazards: hazards,
		Emitter: events.EmitterFunc(func(e events.Event) {
			if e.Type == events.EventTypeMessage {
				fmt.Printf("    %s\n", e.Message)
			}
		}),
		Observer: func(_ string, snap turn.TurnSnapshot) {
			if snap.Turn%*every == 0 || snap.Struck || !snap.Resting {
				fmt.Printf("turn %5d  HP %4d/%-4d (+%d) SP %4d/%-4d (+%d)  %s\n",
					snap.Turn, snap.Snapshot.HP, snap.Snapshot.MaxHP, snap.HPGain,
					snap.Snapshot.Mana, snap.Snapshot.MaxMana, snap.ManaGain,
					restState(snap))
			}
		},
		Game: game,
	})

	p, err := svc.Create(ctx, &turn.CreateInput{
		OwnerID: "simulator",
		Name:    "Simulated Adventurer",
		MaxHP:   *maxHP,
		MaxMana: *maxMana,
		Traits:  parseTraits(*traits),
	})
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}

	// start wounded and drained
	p.Vitals.HP.Current = min(*hp, *maxHP)
	p.Vitals.Mana.Current = min(*mana, *maxMana)
	p.Timed.Set(shared.TimedFood, *food)
	if err := repo.Update(ctx, p); err != nil {
		log.Fatalf("Failed to prepare player: %v", err)
	}

	fmt.Printf("Resting %s\n", delve.DescribeCode(choice.Code))
	report, err := svc.Rest(ctx, p.ID, choice.Code)
	if err != nil {
		log.Fatalf("Rest failed: %v", err)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Turns: %d  End: %s  Hits: %d\n", report.Turns, endLabel(report), report.Hits)
	fmt.Printf("HP %d -> %d  SP %d -> %d\n", report.Before.HP, report.After.HP, report.Before.Mana, report.After.Mana)
	if report.Dead {
		fmt.Printf("Died from %s\n", report.DiedFrom)
		os.Exit(1)
	}
}

func parseTraits(list string) []shared.Trait {
	var out []shared.Trait
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, shared.Trait(name))
		}
	}
	return out
}

func restState(snap turn.TurnSnapshot) string {
	switch {
	case snap.Completed:
		return "done"
	case snap.Resting:
		return string(rest.ModeFor(snap.Count))
	default:
		return "stopped"
	}
}

func endLabel(report *turn.RestReport) string {
	switch {
	case report.Capped:
		return "gave up"
	case report.End == "":
		return "none"
	default:
		return string(report.End)
	}
}
