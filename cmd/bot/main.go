package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/jetlag/internal/common/clock"
	"github.com/KirkDiggler/jetlag/internal/common/uuid"
	"github.com/KirkDiggler/jetlag/internal/config"
	"github.com/KirkDiggler/jetlag/internal/dice"
	"github.com/KirkDiggler/jetlag/internal/handlers/discord"
	"github.com/KirkDiggler/jetlag/internal/repositories/card"
	"github.com/KirkDiggler/jetlag/internal/repositories/chatlog"
	"github.com/KirkDiggler/jetlag/internal/repositories/result"
	"github.com/KirkDiggler/jetlag/internal/services/confirmation"
	gameService "github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/KirkDiggler/jetlag/internal/services/geo"
	"github.com/KirkDiggler/jetlag/internal/services/maprender"
	"github.com/KirkDiggler/jetlag/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	chatLogRepo, err := chatlog.NewRedis(&chatlog.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create chat log repository: %v", err)
	}

	resultRepo, err := result.NewRedis(&result.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create result repository: %v", err)
	}

	cardRepo, err := card.NewYAML(&card.Config{})
	if err != nil {
		log.Fatalf("Failed to load cards: %v", err)
	}

	geocoder, err := geo.NewNominatim(&geo.NominatimConfig{
		BaseURL: cfg.NominatimURL,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}

	mapRenderer, err := maprender.New(&maprender.Config{
		UserAgent: cfg.MapUserAgent,
		CacheDir:  cfg.MapTileCacheDir,
	})
	if err != nil {
		log.Fatalf("Failed to create map renderer: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Seed: cfg.RandomSeed,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	confirmationSvc, err := confirmation.New(&confirmation.Config{
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create confirmation service: %v", err)
	}

	// The session is shared by the notifier and the bot
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session:          session,
		GuildID:          cfg.GuildID,
		MainChannel:      cfg.MainChannel,
		RunnersChannel:   cfg.RunnersChannel,
		ChasersChannel:   cfg.ChasersChannel,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		CardRepo:   cardRepo,
		DiceRoller: dice.New(&dice.Config{Seed: cfg.RandomSeed}),
		Clock:      clock.New(),
		Geocoder:   geocoder,
		Notifier:   notifier,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:             session,
		ApplicationID:       cfg.ApplicationID,
		GuildID:             cfg.GuildID,
		MainChannel:         cfg.MainChannel,
		RunnersChannel:      cfg.RunnersChannel,
		ChasersChannel:      cfg.ChasersChannel,
		GameService:         gameSvc,
		ConfirmationService: confirmationSvc,
		MessagingService:    messagingSvc,
		Geocoder:            geocoder,
		MapRenderer:         mapRenderer,
		ChatLogRepo:         chatLogRepo,
		ResultRepo:          resultRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}

	log.Println("Bot has been shut down")
}
