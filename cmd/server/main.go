package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"clubboard/internal/adapters/discord"
	httpadapter "clubboard/internal/adapters/http"
	"clubboard/internal/application"
	"clubboard/internal/config"
	"clubboard/internal/infrastructure/database"
	"clubboard/internal/infrastructure/i18n"
	"clubboard/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	eventRepo := database.NewEventRepository(pool)
	clubRepo := database.NewClubRepository(pool)
	waitlistRepo := database.NewWaitlistRepository(pool)

	var (
		notifier output.Notifier         = discord.Disabled{}
		channels output.ChannelDirectory = discord.Disabled{}
	)
	if cfg.DiscordBotToken != "" {
		client, err := discord.NewClient(cfg.DiscordBotToken)
		if err != nil {
			log.Fatalf("❌ Erreur lors de la création du client Discord: %v", err)
		}
		notifier = discord.NewNotifier(client, clubRepo)
		channels = client
	} else {
		log.Println("⚠️ DISCORD_BOT_TOKEN absent: notifications Discord désactivées.")
	}

	moderationSvc := application.NewModerationService(eventRepo, notifier)
	eventSvc := application.NewEventService(eventRepo)
	clubSvc := application.NewClubService(clubRepo, channels)
	waitlistSvc := application.NewWaitlistService(waitlistRepo)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	handler := httpadapter.NewHandler(moderationSvc, eventSvc, clubSvc, waitlistSvc, translator)
	app := httpadapter.NewServer(handler)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("❌ Erreur du serveur HTTP: %v", err)
			os.Exit(1)
		}
	}()
	log.Printf("🚀 Serveur en écoute sur %s", cfg.ListenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️ Arrêt du serveur: %v", err)
	}
}
