package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of the bot process
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands in a single guild, which is instant during development
	GuildID string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	NominatimURL string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org/"`

	// The OpenStreetMap tile servers ask every client to identify itself
	MapUserAgent string `env:"MAP_USER_AGENT" envDefault:"jetlag-discord-bot"`

	// MapTileCacheDir keeps downloaded tiles, the user cache directory when empty
	MapTileCacheDir string `env:"MAP_TILE_CACHE_DIR"`

	MainChannel    string `env:"MAIN_CHANNEL" envDefault:"main"`
	RunnersChannel string `env:"RUNNERS_CHANNEL" envDefault:"runners-only"`
	ChasersChannel string `env:"CHASERS_CHANNEL" envDefault:"chasers-only"`

	// RandomSeed makes draws and shuffles repeatable, zero seeds from the time
	RandomSeed int64 `env:"RANDOM_SEED"`
}

// Load reads the given .env files, or .env when none are given, then parses
// the environment. Missing files are skipped and variables already set win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
