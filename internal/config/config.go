package config

import (
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/delve-vitals/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Game    GameConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string // preferred; falls back to in-memory storage when empty
	Addr     string
	Password string
	DB       int
}

// GameConfig holds the game tuning knobs
type GameConfig struct {
	DayLength    int  `env:"GAME_DAY_LENGTH"     envDefault:"10000"`
	HitpointWarn int  `env:"GAME_HITPOINT_WARN"  envDefault:"3"`
	CheatLive    bool `env:"GAME_CHEAT_LIVE"     envDefault:"false"`
	InvulnBypass int  `env:"GAME_INVULN_BYPASS"  envDefault:"9000"`
	MaxRestTurns int  `env:"GAME_MAX_REST_TURNS" envDefault:"9999"`

	StartHP   int `env:"GAME_START_HP"   envDefault:"20"`
	StartMana int `env:"GAME_START_MANA" envDefault:"10"`

	FoodWeak   int `env:"GAME_FOOD_WEAK"   envDefault:"1000"`
	FoodFaint  int `env:"GAME_FOOD_FAINT"  envDefault:"500"`
	FoodStarve int `env:"GAME_FOOD_STARVE" envDefault:"100"`
	FoodMax    int `env:"GAME_FOOD_MAX"    envDefault:"15000"`
	FoodValue  int `env:"GAME_FOOD_VALUE"  envDefault:"150"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	game, err := LoadGame()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Game: *game,
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, errors.InvalidArgument("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, errors.InvalidArgument("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// LoadGame parses only the game tuning, for tools that do not talk to Discord
func LoadGame() (*GameConfig, error) {
	var game GameConfig
	if err := env.Parse(&game); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse game config")
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	return &game, nil
}

// DefaultGame returns the stock tuning without reading the environment
func DefaultGame() GameConfig {
	var game GameConfig
	// defaults only come from struct tags, so an empty environment cannot fail
	_ = env.ParseWithOptions(&game, env.Options{Environment: map[string]string{}})
	return game
}

// Validate rejects tuning the game cannot run with
func (g *GameConfig) Validate() error {
	switch {
	case g.DayLength <= 0:
		return errors.InvalidArgumentf("GAME_DAY_LENGTH must be positive, got %d", g.DayLength)
	case g.HitpointWarn < 0 || g.HitpointWarn > 9:
		return errors.InvalidArgumentf("GAME_HITPOINT_WARN must be 0-9, got %d", g.HitpointWarn)
	case g.MaxRestTurns <= 0:
		return errors.InvalidArgumentf("GAME_MAX_REST_TURNS must be positive, got %d", g.MaxRestTurns)
	case g.StartHP <= 0:
		return errors.InvalidArgumentf("GAME_START_HP must be positive, got %d", g.StartHP)
	case g.StartMana < 0:
		return errors.InvalidArgumentf("GAME_START_MANA cannot be negative, got %d", g.StartMana)
	case g.FoodValue <= 0:
		return errors.InvalidArgumentf("GAME_FOOD_VALUE must be positive, got %d", g.FoodValue)
	case !(g.FoodStarve <= g.FoodFaint && g.FoodFaint <= g.FoodWeak && g.FoodWeak <= g.FoodMax):
		return errors.InvalidArgument("food tiers must satisfy starve <= faint <= weak <= max")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
