package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/delve-vitals/internal/config"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Parse command line arguments
	playerID := flag.String("player", "", "Player ID to inspect")
	ownerID := flag.String("owner", "", "List every player of this Discord user instead")
	asJSON := flag.Bool("json", false, "Dump the stored record")
	flag.Parse()

	if *playerID == "" && *ownerID == "" {
		log.Fatal("Please provide a player ID with -player or an owner with -owner")
	}

	cfg := config.RedisConfig{
		URL:      os.Getenv("REDIS_URL"),
		Addr:     "localhost:6379",
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	client, err := connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	repo := players.NewRedis(client)

	if *ownerID != "" {
		list, err := repo.ListByOwner(ctx, *ownerID)
		if err != nil {
			log.Fatalf("Failed to list players: %v", err)
		}
		fmt.Printf("%d players for %s\n", len(list), *ownerID)
		for _, p := range list {
			printPlayer(p)
		}
		return
	}

	p, err := repo.Get(ctx, *playerID)
	if err != nil {
		log.Fatalf("Failed to get player: %v", err)
	}

	if *asJSON {
		raw, err := client.Get(ctx, "player:"+*playerID).Result()
		if err != nil {
			log.Fatalf("Failed to read raw record: %v", err)
		}
		var pretty map[string]any
		if err := json.Unmarshal([]byte(raw), &pretty); err != nil {
			log.Fatalf("Stored record is not JSON: %v", err)
		}
		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Println(string(out))
		return
	}

	printPlayer(p)
}

func connect(cfg config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func printPlayer(p *player.Player) {
	fmt.Printf("\n=== %s (%s) ===\n", p.Name, p.ID)
	fmt.Printf("Status: %s", p.Status())
	if p.IsDead() {
		fmt.Printf(" (%s)", p.Vitals.DiedFrom)
	}
	fmt.Println()
	fmt.Printf("HP: %d/%d frac %d\n", p.Vitals.HP.Current, p.Vitals.HP.Max, p.Vitals.HP.Frac)
	fmt.Printf("SP: %d/%d frac %d\n", p.Vitals.Mana.Current, p.Vitals.Mana.Max, p.Vitals.Mana.Frac)
	fmt.Printf("Resting: %v (%s, count %d, %d turns in)\n",
		p.Rest.IsResting(), p.Rest.Mode(), p.Rest.Count(), p.Rest.TurnsRested())
	fmt.Printf("Repeat: %s\n", rest.ModeFor(p.Rest.RepeatCount()))
	if p.Rest.Interrupted() {
		fmt.Println("Interruption pending")
	}
	fmt.Printf("Game turn: %d, turns rested: %d\n", p.GameTurn, p.RestingTurn)
	fmt.Printf("Updated: %s\n", p.UpdatedAt)
}
