package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/rollkeeper/rollkeeper/internal/dice"
	"github.com/rollkeeper/rollkeeper/internal/handlers/discord"
	characterRepo "github.com/rollkeeper/rollkeeper/internal/repositories/character"
	checksRepo "github.com/rollkeeper/rollkeeper/internal/repositories/checks"
	gamelogRepo "github.com/rollkeeper/rollkeeper/internal/repositories/gamelog"
	npcRepo "github.com/rollkeeper/rollkeeper/internal/repositories/npc"
	settingsRepo "github.com/rollkeeper/rollkeeper/internal/repositories/settings"
	"github.com/rollkeeper/rollkeeper/internal/services/burst"
	gameService "github.com/rollkeeper/rollkeeper/internal/services/game"
	"github.com/rollkeeper/rollkeeper/internal/services/messaging"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	charRepo, err := characterRepo.NewRedis(&characterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create character repository: %v", err)
	}

	npcs, err := npcRepo.NewRedis(&npcRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create NPC repository: %v", err)
	}

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient:              redisClient,
		DefaultRuleName:          getEnv("DEFAULT_RULESET", ""),
		DefaultCriticalThreshold: getEnvInt("CRITICAL_THRESHOLD", 0),
		DefaultFumbleThreshold:   getEnvInt("FUMBLE_THRESHOLD", 0),
	})
	if err != nil {
		log.Fatalf("Failed to create settings repository: %v", err)
	}

	gamelog, err := gamelogRepo.NewRedis(&gamelogRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game log repository: %v", err)
	}

	checkTTL := time.Duration(getEnvInt("CHECK_TTL_SECONDS", 0)) * time.Second
	checks, err := checksRepo.NewMemory(&checksRepo.Config{
		TTL: checkTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create check repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})

	// Initialize services
	burstSvc, err := burst.New(&burst.Config{
		DiceRoller: diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create burst fire service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		CharacterRepo:    charRepo,
		NPCRepo:          npcs,
		CheckRepo:        checks,
		SettingsRepo:     settings,
		GameLogRepo:      gamelog,
		BurstService:     burstSvc,
		MessagingService: messagingSvc,
		DiceRoller:       diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            discordToken,
		ApplicationID:    applicationID,
		GuildID:          guildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Sweep expired checks in the background so abandoned prompts do
	// not pile up
	sweepInterval := time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 300)) * time.Second
	sweepStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				output, err := gameSvc.SweepExpiredChecks(context.Background())
				if err != nil {
					log.Printf("Check sweep failed: %v", err)
					continue
				}
				if output.Removed > 0 {
					log.Printf("Swept %d expired check(s), %d still pending", output.Removed, output.Live)
				}
			case <-sweepStop:
				return
			}
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	close(sweepStop)

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default
// value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q, expected an integer", key, value)
		return defaultValue
	}
	return parsed
}
